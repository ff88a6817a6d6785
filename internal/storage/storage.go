// Package storage provides durable named-slot storage for the application.
//
// The original system keeps its whole state in browser local storage: a
// small set of named slots, each holding one opaque value, read and written
// wholesale. Storage models exactly that: no schema, no queries, no partial
// updates.
package storage

import "context"

// Storage is a named-slot durable store.
//
// Contract:
//   - Get returns common.ErrNotFound (wrapped) when the slot does not exist.
//   - Set overwrites the slot's entire value.
//   - Delete is a no-op when the slot does not exist.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
