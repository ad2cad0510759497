package attendance

import (
	"context"

	"github.com/trezcool/portal/core/store"
)

type Repository struct {
	coll *store.Collection[Record]
}

func NewRepository(kv store.KV) *Repository {
	return &Repository{coll: store.NewCollection[Record](kv, store.Attendance)}
}

func (repo *Repository) All(ctx context.Context) ([]Record, error) {
	return repo.coll.All(ctx)
}

func (repo *Repository) Add(ctx context.Context, records ...Record) error {
	return repo.coll.Append(ctx, records...)
}

func (repo *Repository) ForStudent(ctx context.Context, studentID string) ([]Record, error) {
	all, err := repo.coll.All(ctx)
	if err != nil {
		return nil, err
	}
	return Select(all, studentID, ""), nil
}

func (repo *Repository) ForSubject(ctx context.Context, subjectCode string) ([]Record, error) {
	all, err := repo.coll.All(ctx)
	if err != nil {
		return nil, err
	}
	return Select(all, "", subjectCode), nil
}

// RecordSession records one class session: every student of the roster gets a record,
// absent unless marked otherwise. It returns the records added.
func (repo *Repository) RecordSession(ctx context.Context, subjectCode, date string, roster []string, marked map[string]Status) ([]Record, error) {
	records := make([]Record, 0, len(roster))
	for _, studentID := range roster {
		status, ok := marked[studentID]
		if !ok {
			status = StatusAbsent
		}
		records = append(records, Record{
			StudentID:   studentID,
			SubjectCode: subjectCode,
			Date:        date,
			Status:      status,
		})
	}
	if len(records) == 0 {
		return records, nil
	}
	return records, repo.coll.Append(ctx, records...)
}
