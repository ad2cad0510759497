package attendance_test

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/core/attendance"
	"github.com/trezcool/portal/storage/kv/memkv"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		pct  float64
		want attendance.Standing
	}{
		{0, attendance.StandingLow},
		{50, attendance.StandingLow},
		{74.99, attendance.StandingLow},
		{75.00, attendance.StandingAverage},
		{84.99, attendance.StandingAverage},
		{85.00, attendance.StandingGood},
		{100, attendance.StandingGood},
	}
	for _, tt := range tests {
		if got := attendance.Classify(tt.pct); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestRollup(t *testing.T) {
	records := []attendance.Record{
		{StudentID: "STU001", SubjectCode: "CS301", Date: "2024-01-10", Status: attendance.StatusPresent},
		{StudentID: "STU001", SubjectCode: "CS301", Date: "2024-01-10", Status: attendance.StatusAbsent},
		{StudentID: "STU001", SubjectCode: "CS302", Date: "2024-01-11", Status: attendance.StatusPresent},
		{StudentID: "STU002", SubjectCode: "CS301", Date: "2024-01-10", Status: attendance.StatusPresent},
	}

	tests := []struct {
		name        string
		studentID   string
		subjectCode string
		want        attendance.Summary
	}{
		{
			name: "one subject, duplicates counted", studentID: "STU001", subjectCode: "CS301",
			want: attendance.Summary{Total: 2, Present: 1, Absent: 1, Percentage: 50, Standing: attendance.StandingLow},
		},
		{
			name: "all subjects", studentID: "STU001",
			want: attendance.Summary{Total: 3, Present: 2, Absent: 1, Percentage: 66.67, Standing: attendance.StandingLow},
		},
		{
			name: "perfect", studentID: "STU002",
			want: attendance.Summary{Total: 1, Present: 1, Absent: 0, Percentage: 100, Standing: attendance.StandingGood},
		},
		{
			name: "no records", studentID: "STU404",
			want: attendance.Summary{Standing: attendance.StandingLow},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attendance.Rollup(records, tt.studentID, tt.subjectCode)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Present+got.Absent)
			assert.Equal(t, got.Total == 0, got.Percentage == 0)
		})
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := attendance.NewRepository(memkv.Open())

	require.NoError(t, repo.Add(ctx, attendance.Record{StudentID: "STU001", SubjectCode: "CS301", Date: "d1", Status: attendance.StatusPresent}))

	added, err := repo.RecordSession(ctx, "CS302", "d2", []string{"STU001", "STU002"}, map[string]attendance.Status{
		"STU001": attendance.StatusPresent,
		"STU999": attendance.StatusPresent, // not on the roster
	})
	require.NoError(t, err)
	assert.Equal(t, []attendance.Record{
		{StudentID: "STU001", SubjectCode: "CS302", Date: "d2", Status: attendance.StatusPresent},
		{StudentID: "STU002", SubjectCode: "CS302", Date: "d2", Status: attendance.StatusAbsent},
	}, added)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ForStudent(ctx, "STU001")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	cs302, err := repo.ForSubject(ctx, "CS302")
	require.NoError(t, err)
	assert.Len(t, cs302, 2)

	added, err = repo.RecordSession(ctx, "CS302", "d3", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestParseStatus(t *testing.T) {
	s, err := attendance.ParseStatus(" Present")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, s)

	_, err = attendance.ParseStatus("late")
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)

	var rec attendance.Record
	assert.Error(t, json.Unmarshal([]byte(`{"studentId":"S","status":"late"}`), &rec))
}
