// Package store persists named collections of records as JSON arrays in a key-value substrate.
package store

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

// Collection names
const (
	Users         = "users"
	Students      = "students"
	Faculty       = "faculty"
	Subjects      = "subjects"
	Attendance    = "attendance"
	Marks         = "marks"
	Announcements = "announcements"

	// CurrentUser is the session slot; it holds a single record, not a collection.
	CurrentUser = "currentUser"
)

// AllCollections lists the collection names in seeding order.
var AllCollections = []string{Students, Faculty, Subjects, Users, Attendance, Marks, Announcements}

// KV is the persistence substrate: opaque values under string keys.
// Set must replace the value of key in one step.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Prefixed namespaces every key of kv with prefix. An empty prefix returns kv itself.
func Prefixed(kv KV, prefix string) KV {
	if prefix == "" {
		return kv
	}
	return &prefixedKV{kv: kv, prefix: prefix}
}

type prefixedKV struct {
	kv     KV
	prefix string
}

func (p *prefixedKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return p.kv.Get(ctx, p.prefix+key)
}

func (p *prefixedKV) Set(ctx context.Context, key string, value []byte) error {
	return p.kv.Set(ctx, p.prefix+key, value)
}

func (p *prefixedKV) Delete(ctx context.Context, key string) error {
	return p.kv.Delete(ctx, p.prefix+key)
}

// Collection is an ordered sequence of T stored under a single key.
type Collection[T any] struct {
	kv   KV
	name string
}

func NewCollection[T any](kv KV, name string) *Collection[T] {
	return &Collection[T]{kv: kv, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

// All returns the records in insertion order; a missing collection is empty.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	data, found, err := c.kv.Get(ctx, c.name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", c.name)
	}
	records := make([]T, 0)
	if !found || len(data) == 0 {
		return records, nil
	}
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, core.NewSerializationError(c.name, err)
	}
	return records, nil
}

// Replace overwrites the whole collection with records.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = make([]T, 0)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return core.NewSerializationError(c.name, err)
	}
	if err = c.kv.Set(ctx, c.name, data); err != nil {
		return errors.Wrapf(err, "writing %s", c.name)
	}
	return nil
}

// Append reads the collection, appends records and writes it back.
func (c *Collection[T]) Append(ctx context.Context, records ...T) error {
	all, err := c.All(ctx)
	if err != nil {
		return err
	}
	return c.Replace(ctx, append(all, records...))
}

// UpdateFirst applies fn to the first record matching match and writes the collection back.
// It reports whether a record matched; nothing is written otherwise.
func (c *Collection[T]) UpdateFirst(ctx context.Context, match func(T) bool, fn func(*T)) (bool, error) {
	all, err := c.All(ctx)
	if err != nil {
		return false, err
	}
	for i := range all {
		if match(all[i]) {
			fn(&all[i])
			return true, c.Replace(ctx, all)
		}
	}
	return false, nil
}

// DeleteWhere removes every record matching match and returns how many were removed.
// The collection is always written back, even when nothing matched.
func (c *Collection[T]) DeleteWhere(ctx context.Context, match func(T) bool) (int, error) {
	all, err := c.All(ctx)
	if err != nil {
		return 0, err
	}
	kept := all[:0]
	for _, rec := range all {
		if !match(rec) {
			kept = append(kept, rec)
		}
	}
	return len(all) - len(kept), c.Replace(ctx, kept)
}

// Exists reports whether the collection key is present, even if it holds an empty array.
func (c *Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, found, err := c.kv.Get(ctx, c.name)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", c.name)
	}
	return found, nil
}

// Slot is a single optional record stored under a key.
type Slot[T any] struct {
	kv   KV
	name string
}

func NewSlot[T any](kv KV, name string) *Slot[T] {
	return &Slot[T]{kv: kv, name: name}
}

func (s *Slot[T]) Get(ctx context.Context) (T, bool, error) {
	var v T
	data, found, err := s.kv.Get(ctx, s.name)
	if err != nil {
		return v, false, errors.Wrapf(err, "reading %s", s.name)
	}
	if !found || len(data) == 0 {
		return v, false, nil
	}
	if err = json.Unmarshal(data, &v); err != nil {
		return v, false, core.NewSerializationError(s.name, err)
	}
	return v, true, nil
}

func (s *Slot[T]) Set(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return core.NewSerializationError(s.name, err)
	}
	if err = s.kv.Set(ctx, s.name, data); err != nil {
		return errors.Wrapf(err, "writing %s", s.name)
	}
	return nil
}

func (s *Slot[T]) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.name); err != nil {
		return errors.Wrapf(err, "clearing %s", s.name)
	}
	return nil
}
