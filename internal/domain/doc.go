// Package domain defines the core domain types and interfaces.
//
// No implementation code - just contracts. Interfaces live on the consumer side
// so adapters (memory store, HTTP server) depend on domain, never on each other.
package domain
