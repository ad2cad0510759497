// Package rediskv is a store.KV on Redis: one string key per collection.
package rediskv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/portal/core/store"
)

type DB struct {
	client *redis.Client
	prefix string
}

var _ store.KV = (*DB)(nil) // interface compliance check

// Open connects to addr with short timeouts. Keys are stored as prefix+key.
func Open(addr, prefix string) *DB {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return New(client, prefix)
}

func New(client *redis.Client, prefix string) *DB {
	return &DB{client: client, prefix: prefix}
}

// Healthy verifies redis connectivity.
func (db *DB) Healthy(ctx context.Context) bool {
	return db.client.Ping(ctx).Err() == nil
}

func (db *DB) Close() error {
	return db.client.Close()
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := db.client.Get(ctx, db.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GET %s", db.prefix+key)
	}
	return val, true, nil
}

func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	if err := db.client.Set(ctx, db.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "SET %s", db.prefix+key)
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, key string) error {
	if err := db.client.Del(ctx, db.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "DEL %s", db.prefix+key)
	}
	return nil
}
