package subject

import "github.com/trezcool/portal/core"

type Subject struct {
	Code       string `json:"code" validate:"required,notblank"`
	Name       string `json:"name" validate:"required,notblank"`
	Department string `json:"department" validate:"required,notblank"`
	Year       string `json:"year" validate:"required,oneof=1 2 3 4"`
	Credits    int    `json:"credits" validate:"gte=0"`
	FacultyID  string `json:"facultyId"` // may reference no Faculty
}

// UpdateSubject defines what may be merged over an existing Subject; nil fields are kept.
type UpdateSubject struct {
	Code       *string
	Name       *string
	Department *string
	Year       *string
	Credits    *int
	FacultyID  *string
}

func (us UpdateSubject) apply(s *Subject) {
	if us.Code != nil {
		s.Code = *us.Code
	}
	if us.Name != nil {
		s.Name = *us.Name
	}
	if us.Department != nil {
		s.Department = *us.Department
	}
	if us.Year != nil {
		s.Year = *us.Year
	}
	if us.Credits != nil {
		s.Credits = *us.Credits
	}
	if us.FacultyID != nil {
		s.FacultyID = *us.FacultyID
	}
}

type QueryFilter struct {
	Search     string
	Department string
	Year       string
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
