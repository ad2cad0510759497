// Package report aggregates the collections into the dashboards and reports of each role.
package report

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/announcement"
	"github.com/trezcool/portal/core/attendance"
	"github.com/trezcool/portal/core/faculty"
	"github.com/trezcool/portal/core/marks"
	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/subject"
	"github.com/trezcool/portal/core/user"
)

// RecentCount is how many announcements the dashboards show.
const RecentCount = 5

var (
	ErrStudentNotFound = errors.New("student profile not found")
	ErrFacultyNotFound = errors.New("faculty profile not found")
)

type Statistics struct {
	TotalStudents    int `json:"totalStudents"`
	TotalFaculty     int `json:"totalFaculty"`
	TotalSubjects    int `json:"totalSubjects"`
	TotalDepartments int `json:"totalDepartments"` // distinct departments of the students
}

type SubjectAttendance struct {
	Subject subject.Subject    `json:"subject"`
	Summary attendance.Summary `json:"summary"`
}

type StudentDashboard struct {
	Student            student.Student             `json:"student"`
	Attendance         attendance.Summary          `json:"attendance"`
	Subjects           []SubjectAttendance         `json:"subjects"`
	Marks              []marks.SubjectTotal        `json:"marks"`
	TotalSubjects      int                         `json:"totalSubjects"`
	TotalAnnouncements int                         `json:"totalAnnouncements"`
	Recent             []announcement.Announcement `json:"recent"`
}

type FacultyDashboard struct {
	Faculty       faculty.Faculty             `json:"faculty"`
	Subjects      []subject.Subject           `json:"subjects"`
	TotalStudents int                         `json:"totalStudents"`
	Recent        []announcement.Announcement `json:"recent"`
}

// StudentAttendance is a row of the attendance report.
type StudentAttendance struct {
	Student student.Student    `json:"student"`
	Summary attendance.Summary `json:"summary"`
}

// Service reads the collections it reports on from a store.KV.
type Service struct {
	students      *student.Repository
	faculty       *faculty.Repository
	subjects      *subject.Repository
	attendance    *attendance.Repository
	marks         *marks.Repository
	announcements *announcement.Repository
}

func NewService(kv store.KV) *Service {
	users := user.NewRepository(kv)
	return &Service{
		students:      student.NewRepository(kv, users),
		faculty:       faculty.NewRepository(kv, users),
		subjects:      subject.NewRepository(kv),
		attendance:    attendance.NewRepository(kv),
		marks:         marks.NewRepository(kv),
		announcements: announcement.NewRepository(kv),
	}
}

func (svc *Service) Statistics(ctx context.Context) (Statistics, error) {
	students, err := svc.students.All(ctx)
	if err != nil {
		return Statistics{}, err
	}
	fac, err := svc.faculty.All(ctx)
	if err != nil {
		return Statistics{}, err
	}
	subjects, err := svc.subjects.All(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Stats(students, fac, subjects), nil
}

func (svc *Service) StudentDashboard(ctx context.Context, studentID string) (StudentDashboard, error) {
	s, found, err := svc.students.Get(ctx, studentID)
	if err != nil {
		return StudentDashboard{}, err
	}
	if !found {
		return StudentDashboard{}, errors.Wrap(ErrStudentNotFound, studentID)
	}
	subjects, err := svc.subjects.All(ctx)
	if err != nil {
		return StudentDashboard{}, err
	}
	records, err := svc.attendance.ForStudent(ctx, s.ID)
	if err != nil {
		return StudentDashboard{}, err
	}
	scores, err := svc.marks.ForStudent(ctx, s.ID)
	if err != nil {
		return StudentDashboard{}, err
	}
	anns, err := svc.announcements.All(ctx)
	if err != nil {
		return StudentDashboard{}, err
	}
	return ForStudent(s, subjects, records, scores, anns), nil
}

func (svc *Service) FacultyDashboard(ctx context.Context, facultyID string) (FacultyDashboard, error) {
	f, found, err := svc.faculty.Get(ctx, facultyID)
	if err != nil {
		return FacultyDashboard{}, err
	}
	if !found {
		return FacultyDashboard{}, errors.Wrap(ErrFacultyNotFound, facultyID)
	}
	subjects, err := svc.subjects.All(ctx)
	if err != nil {
		return FacultyDashboard{}, err
	}
	students, err := svc.students.All(ctx)
	if err != nil {
		return FacultyDashboard{}, err
	}
	anns, err := svc.announcements.All(ctx)
	if err != nil {
		return FacultyDashboard{}, err
	}
	return ForFaculty(f, subjects, students, anns), nil
}

// AttendanceReport rolls up the attendance of every student of department and year.
// Empty arguments do not filter.
func (svc *Service) AttendanceReport(ctx context.Context, department, year string) ([]StudentAttendance, error) {
	students, err := svc.students.All(ctx)
	if err != nil {
		return nil, err
	}
	records, err := svc.attendance.All(ctx)
	if err != nil {
		return nil, err
	}
	return Attendance(students, records, department, year), nil
}

// Timetable returns the weekly timetable of a student's class.
func (svc *Service) Timetable(ctx context.Context, studentID string) ([]Slot, error) {
	s, found, err := svc.students.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrap(ErrStudentNotFound, studentID)
	}
	subjects, err := svc.subjects.All(ctx)
	if err != nil {
		return nil, err
	}
	return Timetable(subject.ForClass(subjects, s.Department, s.Year)), nil
}
