package storage

import (
	"errors"
)

// ErrNotFound is returned by Store.Get for keys that were never written.
var ErrNotFound = errors.New("key not found")

// Record is a flat set of named fields stored under a single key.
type Record map[string]string

// Store is the interface that abstracts preference persistence.
type Store interface {
	Get(key string) (Record, error)
	Put(key string, record Record) error
}
