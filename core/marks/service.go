package marks

import (
	"context"
	"time"

	"github.com/trezcool/portal/core/store"
)

var nowFunc = time.Now // mockable

type Repository struct {
	coll *store.Collection[Record]
}

func NewRepository(kv store.KV) *Repository {
	return &Repository{coll: store.NewCollection[Record](kv, store.Marks)}
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

// RecordAssessment records one assessment for every student of the roster.
// Students without an entry in obtained get 0. All records share the current timestamp.
func (repo *Repository) RecordAssessment(ctx context.Context, subjectCode, assessmentType string, maxMarks float64, roster []string, obtained map[string]float64) ([]Record, error) {
	date := nowFunc().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	records := make([]Record, 0, len(roster))
	for _, studentID := range roster {
		records = append(records, Record{
			StudentID:      studentID,
			SubjectCode:    subjectCode,
			AssessmentType: assessmentType,
			MaxMarks:       maxMarks,
			MarksObtained:  obtained[studentID],
			Date:           date,
		})
	}
	if len(records) == 0 {
		return records, nil
	}
	return records, repo.coll.Append(ctx, records...)
}
