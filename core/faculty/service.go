package faculty

import (
	"context"

	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/user"
)

type Repository struct {
	coll  *store.Collection[Faculty]
	users *user.Repository
}

func NewRepository(kv store.KV, users *user.Repository) *Repository {
	return &Repository{
		coll:  store.NewCollection[Faculty](kv, store.Faculty),
		users: users,
	}
}

func (repo *Repository) All(ctx context.Context) ([]Faculty, error) {
	return repo.coll.All(ctx)
}

func (repo *Repository) Get(ctx context.Context, id string) (Faculty, bool, error) {
	all, err := repo.coll.All(ctx)
	if err != nil {
		return Faculty{}, false, err
	}
	f, ok := Find(all, id)
	return f, ok, nil
}

// Add appends f and its mirrored login user, without checking id uniqueness.
func (repo *Repository) Add(ctx context.Context, f Faculty) error {
	if err := repo.coll.Append(ctx, f); err != nil {
		return err
	}
	return repo.users.Add(ctx, user.NewMirror(user.RoleFaculty, f.ID, f.Username, f.Name))
}

func (repo *Repository) Update(ctx context.Context, id string, uf UpdateFaculty) error {
	_, err := repo.coll.UpdateFirst(ctx, func(f Faculty) bool { return f.ID == id }, uf.apply)
	return err
}

// Delete removes every Faculty with the given id. Subjects keep pointing at it.
func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.coll.DeleteWhere(ctx, func(f Faculty) bool { return f.ID == id })
	return err
}
