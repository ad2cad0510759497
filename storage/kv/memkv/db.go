// Package memkv is an in-memory store.KV, used by tests and the memory storage engine.
package memkv

import (
	"context"
	"sort"
	"sync"

	"github.com/trezcool/portal/core/store"
)

type DB struct {
	sync.RWMutex
	table map[string][]byte
}

var _ store.KV = (*DB)(nil) // interface compliance check

func Open() *DB {
	return &DB{table: make(map[string][]byte)}
}

func (db *DB) Get(_ context.Context, key string) ([]byte, bool, error) {
	db.RLock()
	defer db.RUnlock()

	val, ok := db.table[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

func (db *DB) Set(_ context.Context, key string, value []byte) error {
	db.Lock()
	defer db.Unlock()
	db.table[key] = append([]byte(nil), value...)
	return nil
}

func (db *DB) Delete(_ context.Context, key string) error {
	db.Lock()
	defer db.Unlock()
	delete(db.table, key)
	return nil
}

// Keys returns the stored keys, sorted.
func (db *DB) Keys() []string {
	db.RLock()
	defer db.RUnlock()

	keys := make([]string, 0, len(db.table))
	for k := range db.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
