package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/store"
)

const dateLayout = "2006-01-02T15:04:05.000Z07:00"

var nowFunc = time.Now // mockable

type Repository struct {
	coll *store.Collection[Announcement]
}

func NewRepository(kv store.KV) *Repository {
	return &Repository{coll: store.NewCollection[Announcement](kv, store.Announcements)}
}

// All returns the announcements, newest first.
func (repo *Repository) All(ctx context.Context) ([]Announcement, error) {
	return repo.coll.All(ctx)
}

// Add stamps ann with a fresh ID and the current date, and puts it first.
func (repo *Repository) Add(ctx context.Context, ann Announcement) (Announcement, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Announcement{}, errors.Wrap(err, "uuid.NewV7()")
	}
	ann.ID = id.String()
	ann.Date = nowFunc().UTC().Format(dateLayout)

	all, err := repo.coll.All(ctx)
	if err != nil {
		return Announcement{}, err
	}
	return ann, repo.coll.Replace(ctx, append([]Announcement{ann}, all...))
}
