package faculty

import "github.com/trezcool/portal/core"

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Faculty.Name, Faculty.ID or Faculty.Email.
func Filter(faculty []Faculty, filter QueryFilter) []Faculty {
	filter.Clean()
	filtered := make([]Faculty, 0, len(faculty))
	for _, f := range faculty {
		if filter.Search != "" &&
			!core.ContainsFold(f.Name, filter.Search) &&
			!core.ContainsFold(f.ID, filter.Search) &&
			!core.ContainsFold(f.Email, filter.Search) {
			continue
		}
		if filter.Department != "" && f.Department != filter.Department {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

func Find(faculty []Faculty, id string) (Faculty, bool) {
	for _, f := range faculty {
		if f.ID == id {
			return f, true
		}
	}
	return Faculty{}, false
}
