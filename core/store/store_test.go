package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/storage/kv/memkv"
)

type record struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

func TestCollection(t *testing.T) {
	ctx := context.Background()
	kv := memkv.Open()
	coll := store.NewCollection[record](kv, "records")

	exists, err := coll.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	require.NoError(t, coll.Replace(ctx, nil))
	exists, err = coll.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists, "an empty collection still exists")

	raw, _, _ := kv.Get(ctx, "records")
	assert.Equal(t, "[]", string(raw))

	require.NoError(t, coll.Append(ctx, record{"b", 2}, record{"a", 1}))
	require.NoError(t, coll.Append(ctx, record{"b", 3}))

	all, err = coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{"b", 2}, {"a", 1}, {"b", 3}}, all, "insertion order is kept")
}

func TestCollection_corrupt(t *testing.T) {
	ctx := context.Background()
	kv := memkv.Open()
	require.NoError(t, kv.Set(ctx, "records", []byte(`{not json`)))

	_, err := store.NewCollection[record](kv, "records").All(ctx)
	require.Error(t, err)
	assert.True(t, core.IsSerialization(err))

	var serr *core.SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "records", serr.Collection)
}

func TestSlot(t *testing.T) {
	ctx := context.Background()
	kv := memkv.Open()
	slot := store.NewSlot[record](kv, store.CurrentUser)

	_, ok, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Set(ctx, record{"me", 1}))
	got, ok, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, record{"me", 1}, got)

	require.NoError(t, slot.Clear(ctx))
	_, ok, err = slot.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, store.CurrentUser, []byte(`[1,2]`)))
	_, _, err = slot.Get(ctx)
	assert.True(t, core.IsSerialization(err))
}

func TestCollection_UpdateFirst(t *testing.T) {
	ctx := context.Background()
	coll := store.NewCollection[record](memkv.Open(), "records")
	require.NoError(t, coll.Replace(ctx, []record{{"a", 1}, {"b", 2}, {"a", 3}}))

	byKey := func(key string) func(record) bool {
		return func(r record) bool { return r.Key == key }
	}

	ok, err := coll.UpdateFirst(ctx, byKey("a"), func(r *record) { r.Value = 10 })
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = coll.UpdateFirst(ctx, byKey("z"), func(r *record) { r.Value = 99 })
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{"a", 10}, {"b", 2}, {"a", 3}}, all, "only the first match changes")
}

func TestCollection_DeleteWhere(t *testing.T) {
	ctx := context.Background()
	coll := store.NewCollection[record](memkv.Open(), "records")

	n, err := coll.DeleteWhere(ctx, func(record) bool { return true })
	require.NoError(t, err)
	assert.Zero(t, n)
	exists, err := coll.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists, "delete writes the collection back")

	require.NoError(t, coll.Replace(ctx, []record{{"a", 1}, {"b", 2}, {"a", 3}}))
	n, err = coll.DeleteWhere(ctx, func(r record) bool { return r.Key == "a" })
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{"b", 2}}, all)
}

func TestPrefixed(t *testing.T) {
	ctx := context.Background()
	kv := memkv.Open()
	assert.Same(t, kv, store.Prefixed(kv, "").(*memkv.DB))

	users := store.NewCollection[record](store.Prefixed(kv, "qa:"), store.Users)
	require.NoError(t, users.Append(ctx, record{"a", 1}))

	_, found, err := kv.Get(ctx, store.Users)
	require.NoError(t, err)
	assert.False(t, found)
	raw, found, err := kv.Get(ctx, "qa:users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"key":"a","value":1}]`, string(raw))
}
