package announcement

// VisibleToStudent returns the announcements addressed to everyone or to the class of department and year.
// No command lists by class; the student views go through ForSubject. It is kept for library callers.
func VisibleToStudent(list []Announcement, department, year string) []Announcement {
	return where(list, func(a Announcement) bool {
		return a.Target == TargetAll || (a.Department == department && a.Year == year)
	})
}

// ForSubject returns the announcements addressed to everyone or to subjectCode.
// An empty subjectCode returns all of them.
func ForSubject(list []Announcement, subjectCode string) []Announcement {
	if subjectCode == "" {
		return where(list, func(Announcement) bool { return true })
	}
	return where(list, func(a Announcement) bool {
		return a.Target == TargetAll || a.SubjectCode == subjectCode
	})
}

func ByFaculty(list []Announcement, facultyID string) []Announcement {
	return where(list, func(a Announcement) bool { return a.FacultyID == facultyID })
}

// Recent returns at most the first n announcements.
func Recent(list []Announcement, n int) []Announcement {
	if n < 0 {
		n = 0
	}
	if len(list) < n {
		n = len(list)
	}
	recent := make([]Announcement, n)
	copy(recent, list[:n])
	return recent
}

func where(list []Announcement, keep func(Announcement) bool) []Announcement {
	filtered := make([]Announcement, 0, len(list))
	for _, a := range list {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
