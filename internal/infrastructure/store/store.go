package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no document exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the shared record store: string keys mapped to JSON documents.
// It provides no transactions and no locks. Every caller reads a collection
// in full, mutates it in memory and writes it back in full, so concurrent
// writers to the same key are last-writer-wins. All business invariants live
// above this interface, never in it.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Put(ctx context.Context, key string, value any) error
}
