package report

import (
	"github.com/trezcool/portal/core/announcement"
	"github.com/trezcool/portal/core/attendance"
	"github.com/trezcool/portal/core/faculty"
	"github.com/trezcool/portal/core/marks"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/subject"
)

func Stats(students []student.Student, fac []faculty.Faculty, subjects []subject.Subject) Statistics {
	return Statistics{
		TotalStudents:    len(students),
		TotalFaculty:     len(fac),
		TotalSubjects:    len(subjects),
		TotalDepartments: len(student.Departments(students)),
	}
}

// ForStudent builds the dashboard of s. records and scores are expected to be those of s.
// The announcement count covers every announcement, not only those visible to s.
func ForStudent(s student.Student, subjects []subject.Subject, records []attendance.Record, scores []marks.Record, anns []announcement.Announcement) StudentDashboard {
	taken := subject.ForClass(subjects, s.Department, s.Year)
	perSubject := make([]SubjectAttendance, 0, len(taken))
	for _, sub := range taken {
		perSubject = append(perSubject, SubjectAttendance{
			Subject: sub,
			Summary: attendance.Rollup(records, s.ID, sub.Code),
		})
	}
	return StudentDashboard{
		Student:            s,
		Attendance:         attendance.Rollup(records, s.ID, ""),
		Subjects:           perSubject,
		Marks:              marks.BySubject(marks.Select(scores, s.ID, "")),
		TotalSubjects:      len(taken),
		TotalAnnouncements: len(anns),
		Recent:             announcement.Recent(anns, RecentCount),
	}
}

// ForFaculty builds the dashboard of f. A student is counted once even when it takes
// several subjects of f.
func ForFaculty(f faculty.Faculty, subjects []subject.Subject, students []student.Student, anns []announcement.Announcement) FacultyDashboard {
	taught := subject.ForFaculty(subjects, f.ID)
	var total int
	for _, s := range students {
		for _, sub := range taught {
			if sub.Department == s.Department && sub.Year == s.Year {
				total++
				break
			}
		}
	}
	return FacultyDashboard{
		Faculty:       f,
		Subjects:      taught,
		TotalStudents: total,
		Recent:        announcement.Recent(anns, RecentCount),
	}
}

func Attendance(students []student.Student, records []attendance.Record, department, year string) []StudentAttendance {
	filtered := student.Filter(students, student.QueryFilter{Department: department, Year: year})
	rows := make([]StudentAttendance, 0, len(filtered))
	for _, s := range filtered {
		rows = append(rows, StudentAttendance{Student: s, Summary: attendance.Rollup(records, s.ID, "")})
	}
	return rows
}
