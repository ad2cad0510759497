package subject

import (
	"context"

	"github.com/trezcool/portal/core/store"
)

type Repository struct {
	coll *store.Collection[Subject]
}

func NewRepository(kv store.KV) *Repository {
	return &Repository{coll: store.NewCollection[Subject](kv, store.Subjects)}
}

func (repo *Repository) All(ctx context.Context) ([]Subject, error) {
	return repo.coll.All(ctx)
}

func (repo *Repository) Get(ctx context.Context, code string) (Subject, bool, error) {
	all, err := repo.coll.All(ctx)
	if err != nil {
		return Subject{}, false, err
	}
	s, ok := Find(all, code)
	return s, ok, nil
}

// Add appends s. Neither the code nor the faculty reference is checked.
func (repo *Repository) Add(ctx context.Context, s Subject) error {
	return repo.coll.Append(ctx, s)
}

func (repo *Repository) Update(ctx context.Context, code string, us UpdateSubject) error {
	_, err := repo.coll.UpdateFirst(ctx, func(s Subject) bool { return s.Code == code }, us.apply)
	return err
}

func (repo *Repository) Delete(ctx context.Context, code string) error {
	_, err := repo.coll.DeleteWhere(ctx, func(s Subject) bool { return s.Code == code })
	return err
}
