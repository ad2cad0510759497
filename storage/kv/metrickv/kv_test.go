package metrickv

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/user"
	"github.com/trezcool/portal/storage/kv/memkv"
)

type failingKV struct{ store.KV }

func (failingKV) Set(context.Context, string, []byte) error { return assert.AnError }

func TestKV(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	kv, err := Wrap(memkv.Open(), reg)
	require.NoError(t, err)

	users := user.NewRepository(kv)
	require.NoError(t, users.Add(ctx, user.User{Username: "admin", Password: "admin123", Role: user.RoleAdmin}))
	_, _, err = users.Get(ctx, "admin")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(kv.ops.WithLabelValues("get", store.Users)), "Add reads before writing")
	assert.Equal(t, 1.0, testutil.ToFloat64(kv.ops.WithLabelValues("set", store.Users)))
	assert.Equal(t, 0, testutil.CollectAndCount(kv.failures))
	assert.Greater(t, testutil.ToFloat64(kv.bytes.WithLabelValues(store.Users)), 0.0)

	require.NoError(t, kv.Delete(ctx, store.Users))
	assert.Equal(t, 1.0, testutil.ToFloat64(kv.ops.WithLabelValues("delete", store.Users)))

	_, err = Wrap(memkv.Open(), reg)
	assert.Error(t, err, "metrics are registered once per registry")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	assert.Contains(t, buf.String(), `portal_kv_operations_total{key="users",op="set"} 1`)
}

func TestKV_failures(t *testing.T) {
	ctx := context.Background()
	kv, err := Wrap(failingKV{memkv.Open()}, prometheus.NewRegistry())
	require.NoError(t, err)

	assert.ErrorIs(t, kv.Set(ctx, store.Marks, []byte(`[]`)), assert.AnError)
	assert.Equal(t, 1.0, testutil.ToFloat64(kv.failures.WithLabelValues("set", store.Marks)))
	_, found, err := kv.Get(ctx, store.Marks)
	require.NoError(t, err)
	assert.False(t, found)
}
