package student

import "github.com/trezcool/portal/core"

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Student.Name, Student.ID or Student.Email.
func Filter(students []Student, filter QueryFilter) []Student {
	filter.Clean()
	filtered := make([]Student, 0, len(students))
	for _, s := range students {
		if filter.Search != "" &&
			!core.ContainsFold(s.Name, filter.Search) &&
			!core.ContainsFold(s.ID, filter.Search) &&
			!core.ContainsFold(s.Email, filter.Search) {
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

// InClass returns the students of a department and year, ie. the roster of its subjects.
func InClass(students []Student, department, year string) []Student {
	roster := make([]Student, 0)
	for _, s := range students {
		if s.Department == department && s.Year == year {
			roster = append(roster, s)
		}
	}
	return roster
}

// Find returns the first Student with the given id.
func Find(students []Student, id string) (Student, bool) {
	for _, s := range students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

// Departments returns the distinct departments, in first-seen order.
func Departments(students []Student) []string {
	seen := make(map[string]struct{})
	depts := make([]string, 0)
	for _, s := range students {
		if _, ok := seen[s.Department]; ok {
			continue
		}
		seen[s.Department] = struct{}{}
		depts = append(depts, s.Department)
	}
	return depts
}
