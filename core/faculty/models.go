package faculty

import "github.com/trezcool/portal/core"

type Faculty struct {
	ID          string `json:"id" validate:"required,notblank"`
	Name        string `json:"name" validate:"required,notblank"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Department  string `json:"department" validate:"required,notblank"`
	Designation string `json:"designation"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// UpdateFaculty defines what may be merged over an existing Faculty; nil fields are kept.
type UpdateFaculty struct {
	ID          *string
	Name        *string
	Email       *string
	Phone       *string
	Department  *string
	Designation *string
	Username    *string
	Password    *string
}

func (uf UpdateFaculty) apply(f *Faculty) {
	for _, fld := range []struct {
		dst *string
		src *string
	}{
		{&f.ID, uf.ID},
		{&f.Name, uf.Name},
		{&f.Email, uf.Email},
		{&f.Phone, uf.Phone},
		{&f.Department, uf.Department},
		{&f.Designation, uf.Designation},
		{&f.Username, uf.Username},
		{&f.Password, uf.Password},
	} {
		if fld.src != nil {
			*fld.dst = *fld.src
		}
	}
}

type QueryFilter struct {
	Search     string
	Department string
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
