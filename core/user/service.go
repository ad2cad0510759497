package user

import (
	"context"

	"github.com/trezcool/portal/core/store"
)

type Repository struct {
	coll *store.Collection[User]
}

func NewRepository(kv store.KV) *Repository {
	return &Repository{coll: store.NewCollection[User](kv, store.Users)}
}

func (repo *Repository) All(ctx context.Context) ([]User, error) {
	return repo.coll.All(ctx)
}

// Add appends usr. Usernames are not checked for uniqueness.
func (repo *Repository) Add(ctx context.Context, usr User) error {
	return repo.coll.Append(ctx, usr)
}

// Get returns the first User with the given username.
func (repo *Repository) Get(ctx context.Context, username string) (User, bool, error) {
	users, err := repo.coll.All(ctx)
	if err != nil {
		return User{}, false, err
	}
	for _, usr := range users {
		if usr.Username == username {
			return usr, true, nil
		}
	}
	return User{}, false, nil
}

// FindByCredentials returns the first User matching username, password and role.
func (repo *Repository) FindByCredentials(ctx context.Context, username, password string, role Role) (User, bool, error) {
	users, err := repo.coll.All(ctx)
	if err != nil {
		return User{}, false, err
	}
	for _, usr := range users {
		if usr.Matches(username, password, role) {
			return usr, true, nil
		}
	}
	return User{}, false, nil
}

// Update merges uu over the first User with the given username; a missing User is ignored.
func (repo *Repository) Update(ctx context.Context, username string, uu UpdateUser) error {
	_, err := repo.coll.UpdateFirst(ctx,
		func(usr User) bool { return usr.Username == username },
		uu.apply,
	)
	return err
}

// Delete removes every User with the given username.
func (repo *Repository) Delete(ctx context.Context, username string) error {
	_, err := repo.coll.DeleteWhere(ctx, func(usr User) bool { return usr.Username == username })
	return err
}

// Replace overwrites the whole collection.
func (repo *Repository) Replace(ctx context.Context, users []User) error {
	return repo.coll.Replace(ctx, users)
}
