package marks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/storage/kv/memkv"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Grade
	}{
		{0, GradeF},
		{49.99, GradeF},
		{50.00, GradeD},
		{59.99, GradeD},
		{60.00, GradeC},
		{69.99, GradeC},
		{70, GradeB},
		{80, GradeA},
		{89.99, GradeA},
		{90.00, GradeAPlus},
		{100, GradeAPlus},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.pct); got != tt.want {
			t.Errorf("GradeFor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		obtained  float64
		max       float64
		wantPct   float64
		wantGrade Grade
	}{
		{name: "rounded", obtained: 2, max: 3, wantPct: 66.67, wantGrade: GradeC},
		{name: "just below D", obtained: 4999, max: 10000, wantPct: 49.99, wantGrade: GradeF},
		{name: "exact D", obtained: 25, max: 50, wantPct: 50, wantGrade: GradeD},
		{name: "just below A+", obtained: 8999, max: 10000, wantPct: 89.99, wantGrade: GradeA},
		{name: "full", obtained: 100, max: 100, wantPct: 100, wantGrade: GradeAPlus},
		{name: "no max marks", obtained: 10, max: 0, wantPct: 0, wantGrade: GradeF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(Record{MarksObtained: tt.obtained, MaxMarks: tt.max})
			assert.Equal(t, tt.wantPct, got.Percentage)
			assert.Equal(t, tt.wantGrade, got.Grade)
		})
	}
}

func TestRollupAndBySubject(t *testing.T) {
	records := []Record{
		{StudentID: "STU001", SubjectCode: "CS301", AssessmentType: "Quiz", MaxMarks: 20, MarksObtained: 18},
		{StudentID: "STU001", SubjectCode: "CS302", AssessmentType: "Mid", MaxMarks: 50, MarksObtained: 20},
		{StudentID: "STU001", SubjectCode: "CS301", AssessmentType: "Mid", MaxMarks: 50, MarksObtained: 35},
		{StudentID: "STU002", SubjectCode: "CS301", AssessmentType: "Quiz", MaxMarks: 20, MarksObtained: 5},
	}

	scored := Rollup(records, "STU001", "CS301")
	require.Len(t, scored, 2)
	assert.Equal(t, 90.0, scored[0].Percentage)
	assert.Equal(t, GradeAPlus, scored[0].Grade)
	assert.Equal(t, 70.0, scored[1].Percentage)
	assert.Equal(t, GradeB, scored[1].Grade)

	assert.Len(t, Rollup(records, "STU001", ""), 3)

	totals := BySubject(Select(records, "STU001", ""))
	assert.Equal(t, []SubjectTotal{
		{SubjectCode: "CS301", Obtained: 53, Total: 70, Count: 2, Percentage: 75.71, Grade: GradeB},
		{SubjectCode: "CS302", Obtained: 20, Total: 50, Count: 1, Percentage: 40, Grade: GradeF},
	}, totals)
}

func TestRepository_RecordAssessment(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	ctx := context.Background()
	repo := NewRepository(memkv.Open())

	added, err := repo.RecordAssessment(ctx, "CS301", "Quiz", 20, []string{"STU001", "STU002"}, map[string]float64{"STU001": 17})
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{StudentID: "STU001", SubjectCode: "CS301", AssessmentType: "Quiz", MaxMarks: 20, MarksObtained: 17, Date: "2024-03-01T10:00:00.000Z"},
		{StudentID: "STU002", SubjectCode: "CS301", AssessmentType: "Quiz", MaxMarks: 20, MarksObtained: 0, Date: "2024-03-01T10:00:00.000Z"},
	}, added)

	require.NoError(t, repo.Add(ctx, Record{StudentID: "STU003", SubjectCode: "EC201", MaxMarks: 10, MarksObtained: 9}))

	mine, err := repo.ForStudent(ctx, "STU002")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	cs301, err := repo.ForSubject(ctx, "CS301")
	require.NoError(t, err)
	assert.Len(t, cs301, 2)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
