package student

import (
	"context"

	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/user"
)

type Repository struct {
	coll  *store.Collection[Student]
	users *user.Repository
}

func NewRepository(kv store.KV, users *user.Repository) *Repository {
	return &Repository{
		coll:  store.NewCollection[Student](kv, store.Students),
		users: users,
	}
}

func (repo *Repository) All(ctx context.Context) ([]Student, error) {
	return repo.coll.All(ctx)
}

// Get returns the first Student with the given id.
func (repo *Repository) Get(ctx context.Context, id string) (Student, bool, error) {
	students, err := repo.coll.All(ctx)
	if err != nil {
		return Student{}, false, err
	}
	s, ok := Find(students, id)
	return s, ok, nil
}

// Add appends s and its mirrored login user. Ids are not checked for uniqueness,
// and the two writes are independent: a failed second write leaves the Student without a User.
func (repo *Repository) Add(ctx context.Context, s Student) error {
	if err := repo.coll.Append(ctx, s); err != nil {
		return err
	}
	return repo.users.Add(ctx, user.NewMirror(user.RoleStudent, s.ID, s.Username, s.Name))
}

// Update merges us over the first Student with the given id; a missing Student is ignored.
func (repo *Repository) Update(ctx context.Context, id string, us UpdateStudent) error {
	_, err := repo.coll.UpdateFirst(ctx, func(s Student) bool { return s.ID == id }, us.apply)
	return err
}

// Delete removes every Student with the given id.
// Their Users, attendance and marks are left in place.
func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.coll.DeleteWhere(ctx, func(s Student) bool { return s.ID == id })
	return err
}
