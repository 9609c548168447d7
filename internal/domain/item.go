package domain

import "context"

// Item is a to-do entry. ID is assigned by the repository and never changes.
type Item struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewItem is the caller-supplied part of an Item. Any client-side ID is dropped
// before it reaches the repository.
type NewItem struct {
	Title     string
	Completed bool
}

// ItemRepository owns the ordered item collection.
// List and Add return copies; callers may modify the slices freely.
// Ping reports whether the repository can serve requests before ctx expires.
type ItemRepository interface {
	List(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, item NewItem) ([]Item, error)
	Len() int
	Ping(ctx context.Context) error
}
