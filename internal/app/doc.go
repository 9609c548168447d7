// Package app provides the application service layer.
//
// Orchestrates the item use cases: listing and adding. Sits between HTTP handlers
// and the item repository, and records item metrics outside the store lock.
// Depends on domain interfaces, not concrete implementations.
package app
