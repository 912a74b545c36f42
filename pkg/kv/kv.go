// Package kv defines the embedded key-value store the assistant
// persists its domain records through. Keys are flat strings built from
// '/'-joined segments ("edu/assignment/00000042"); prefix listing in
// lexicographic order is the only query primitive.
//
// Two implementations are provided: a BadgerDB-backed store for
// durable data and an in-memory store for tests. Consistency is
// last-write-wins per key; concurrent external writers are not
// coordinated.
package kv

import (
	"context"
	"errors"
	"iter"
	"strings"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("kv: not found")

// Sep joins key segments.
const Sep = "/"

// Join builds a key from path segments. Segments must not contain Sep.
func Join(segments ...string) string {
	return strings.Join(segments, Sep)
}

// Entry is a key-value pair yielded by List.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the persistence primitive: whole-value reads and writes
// keyed by flat strings, plus lexicographic prefix iteration.
type Store interface {
	// Get retrieves the value for a key. Returns ErrNotFound if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value, overwriting any existing one.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List iterates entries whose key starts with prefix, in
	// lexicographic key order.
	List(ctx context.Context, prefix string) iter.Seq2[Entry, error]

	// Close releases resources held by the store.
	Close() error
}
