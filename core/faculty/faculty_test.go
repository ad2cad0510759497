package faculty_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/core/faculty"
	"github.com/trezcool/portal/core/user"
	"github.com/trezcool/portal/storage/kv/memkv"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	kv := memkv.Open()
	users := user.NewRepository(kv)
	repo := faculty.NewRepository(kv, users)

	f := faculty.Faculty{
		ID: "FAC010", Name: "Dr. Test", Email: "test@example.com", Phone: "1",
		Department: "CSE", Designation: "Professor", Password: "ignored",
	}
	require.NoError(t, repo.Add(ctx, f))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []faculty.Faculty{f}, all)

	usr, ok, err := users.Get(ctx, "fac010")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.User{Username: "fac010", Password: "faculty123", Role: user.RoleFaculty, ID: "FAC010", Name: "Dr. Test"}, usr)

	designation := "Dean"
	require.NoError(t, repo.Update(ctx, "FAC010", faculty.UpdateFaculty{Designation: &designation}))
	got, ok, err := repo.Get(ctx, "FAC010")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Dean", got.Designation)
	assert.Equal(t, "Dr. Test", got.Name)

	require.NoError(t, repo.Delete(ctx, "FAC010"))
	_, ok, err = repo.Get(ctx, "FAC010")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = users.Get(ctx, "fac010")
	require.NoError(t, err)
	assert.True(t, ok, "deleting faculty does not cascade to users")
}

func TestFilter(t *testing.T) {
	all := []faculty.Faculty{
		{ID: "FAC001", Name: "Dr. Ramesh Verma", Email: "ramesh@example.com", Department: "CSE"},
		{ID: "FAC002", Name: "Dr. Sunita Gupta", Email: "sunita@example.com", Department: "ECE"},
	}
	assert.Len(t, faculty.Filter(all, faculty.QueryFilter{}), 2)
	assert.Len(t, faculty.Filter(all, faculty.QueryFilter{Search: "dr."}), 2)
	assert.Len(t, faculty.Filter(all, faculty.QueryFilter{Search: "dr.", Department: "ECE"}), 1)
	assert.Len(t, faculty.Filter(all, faculty.QueryFilter{Search: "fac001"}), 1)
	assert.Empty(t, faculty.Filter(all, faculty.QueryFilter{Search: "SUNITA", Department: "CSE"}))
}
