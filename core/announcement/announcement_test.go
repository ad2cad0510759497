package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/storage/kv/memkv"
)

func titles(list []Announcement) []string {
	res := make([]string, 0, len(list))
	for _, a := range list {
		res = append(res, a.Title)
	}
	return res
}

func TestNew(t *testing.T) {
	everyone := New("Holiday", "No classes", AllSubjects, "FAC001", "Dr. Rajesh Kumar")
	assert.Equal(t, TargetAll, everyone.Target)

	quiz := New("Quiz", "Quiz on Monday", "CS301", "FAC001", "Dr. Rajesh Kumar")
	assert.Equal(t, TargetSubject, quiz.Target)
	assert.Equal(t, "CS301", quiz.SubjectCode)
}

func TestTarget_json(t *testing.T) {
	var ann Announcement
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","target":"subject"}`), &ann))
	assert.Equal(t, TargetSubject, ann.Target)

	err := json.Unmarshal([]byte(`{"title":"x","target":"everyone"}`), &ann)
	assert.Error(t, err)

	_, err = ParseTarget(" ALL ")
	assert.NoError(t, err)
	_, err = ParseTarget("class")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	data, err := json.Marshal(New("Quiz", "m", "CS301", "FAC001", "Dr"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "department")
}

func TestRepository_Add(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2024, 2, 10, 8, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)) }
	defer func() { nowFunc = time.Now }()

	ctx := context.Background()
	repo := NewRepository(memkv.Open())

	first, err := repo.Add(ctx, New("First", "m", "CS301", "FAC001", "Dr. Rajesh Kumar"))
	require.NoError(t, err)
	second, err := repo.Add(ctx, New("Second", "m", AllSubjects, "FAC002", "Dr. Priya Sharma"))
	require.NoError(t, err)

	assert.Equal(t, "2024-02-10T03:00:00.000Z", first.Date)
	assert.NotEqual(t, first.ID, second.ID)
	id, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Second", "First"}, titles(all), "newest first")
}

func TestQueries(t *testing.T) {
	list := []Announcement{
		{Title: "a", Target: TargetAll, SubjectCode: AllSubjects, FacultyID: "FAC001"},
		{Title: "b", Target: TargetSubject, SubjectCode: "CS301", FacultyID: "FAC001", Department: "Computer Science", Year: "3"},
		{Title: "c", Target: TargetSubject, SubjectCode: "EC201", FacultyID: "FAC002"},
		{Title: "d", Target: TargetSubject, SubjectCode: "CS302", FacultyID: "FAC002", Department: "Computer Science", Year: "3"},
		{Title: "e", Target: TargetSubject, SubjectCode: "CS301", FacultyID: "FAC001"},
		{Title: "f", Target: TargetAll, SubjectCode: AllSubjects, FacultyID: "FAC003"},
	}

	assert.Equal(t, []string{"a", "b", "d", "f"}, titles(VisibleToStudent(list, "Computer Science", "3")))
	assert.Equal(t, []string{"a", "f"}, titles(VisibleToStudent(list, "Electronics", "2")))

	assert.Equal(t, []string{"a", "b", "e", "f"}, titles(ForSubject(list, "CS301")))
	assert.Len(t, ForSubject(list, ""), len(list))

	assert.Equal(t, []string{"c", "d"}, titles(ByFaculty(list, "FAC002")))
	assert.Empty(t, ByFaculty(list, "FAC999"))

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, titles(Recent(list, 5)))
	assert.Len(t, Recent(list, 10), 6)
	assert.Empty(t, Recent(nil, 5))
}
