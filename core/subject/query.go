package subject

import (
	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/faculty"
)

// NotAssigned names the faculty of a Subject whose FacultyID resolves to nobody.
const NotAssigned = "Not Assigned"

// Assignment is a Subject joined with the name of its faculty.
type Assignment struct {
	Subject
	FacultyName string `json:"facultyName"`
}

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Subject.Name or Subject.Code.
func Filter(subjects []Subject, filter QueryFilter) []Subject {
	filter.Clean()
	filtered := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		if filter.Search != "" && !core.ContainsFold(s.Name, filter.Search) && !core.ContainsFold(s.Code, filter.Search) {
			continue
		}
		if filter.Department != "" && s.Department != filter.Department {
			continue
		}
		if filter.Year != "" && s.Year != filter.Year {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func Find(subjects []Subject, code string) (Subject, bool) {
	for _, s := range subjects {
		if s.Code == code {
			return s, true
		}
	}
	return Subject{}, false
}

// Assign joins each Subject to its faculty by id.
func Assign(subjects []Subject, fac []faculty.Faculty) []Assignment {
	assignments := make([]Assignment, 0, len(subjects))
	for _, s := range subjects {
		name := NotAssigned
		if f, ok := faculty.Find(fac, s.FacultyID); ok {
			name = f.Name
		}
		assignments = append(assignments, Assignment{Subject: s, FacultyName: name})
	}
	return assignments
}

// ForFaculty returns the subjects taught by facultyID.
func ForFaculty(subjects []Subject, facultyID string) []Subject {
	taught := make([]Subject, 0)
	for _, s := range subjects {
		if s.FacultyID == facultyID {
			taught = append(taught, s)
		}
	}
	return taught
}

// ForClass returns the subjects of a department and year, ie. the subjects a student takes.
func ForClass(subjects []Subject, department, year string) []Subject {
	taken := make([]Subject, 0)
	for _, s := range subjects {
		if s.Department == department && s.Year == year {
			taken = append(taken, s)
		}
	}
	return taken
}
