package student

import "github.com/trezcool/portal/core"

type Student struct {
	ID         string `json:"id" validate:"required,notblank"`
	Name       string `json:"name" validate:"required,notblank"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Department string `json:"department" validate:"required,notblank"`
	Year       string `json:"year" validate:"required,oneof=1 2 3 4"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// UpdateStudent defines what may be merged over an existing Student; nil fields are kept.
type UpdateStudent struct {
	ID         *string
	Name       *string
	Email      *string
	Phone      *string
	Department *string
	Year       *string
	Username   *string
	Password   *string
}

func (us UpdateStudent) apply(s *Student) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.ID, us.ID)
	set(&s.Name, us.Name)
	set(&s.Email, us.Email)
	set(&s.Phone, us.Phone)
	set(&s.Department, us.Department)
	set(&s.Year, us.Year)
	set(&s.Username, us.Username)
	set(&s.Password, us.Password)
}

type QueryFilter struct {
	Search     string
	Department string
	Year       string
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Department == "" && qf.Year == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
