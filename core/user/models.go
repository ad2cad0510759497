package user

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

// Role is fixed when a User is created.
type Role string

// Roles
const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

var (
	AllRoles = []Role{RoleAdmin, RoleFaculty, RoleStudent}

	// DefaultPasswords are given to the Users mirrored from new Students and Faculty.
	DefaultPasswords = map[Role]string{
		RoleStudent: "student123",
		RoleFaculty: "faculty123",
	}

	ErrInvalidRole = errors.New("invalid role")
)

func ParseRole(s string) (Role, error) {
	role := Role(core.CleanString(s, true /* lower */))
	if !role.Valid() {
		return "", errors.Wrap(ErrInvalidRole, fmt.Sprintf("%q", s))
	}
	return role, nil
}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

func (r *Role) UnmarshalText(text []byte) error {
	role := Role(text)
	if !role.Valid() {
		return errors.Wrap(ErrInvalidRole, fmt.Sprintf("%q", text))
	}
	*r = role
	return nil
}

// User holds login credentials. Passwords are stored and compared as plain text.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	ID       string `json:"id,omitempty"` // id of the linked Student or Faculty
	Name     string `json:"name"`
}

func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u User) IsFaculty() bool { return u.Role == RoleFaculty }
func (u User) IsStudent() bool { return u.Role == RoleStudent }

// Matches reports whether all three credentials match exactly.
func (u User) Matches(username, password string, role Role) bool {
	return u.Username == username && u.Password == password && u.Role == role
}

// UpdateUser defines what may be modified on an existing User; nil fields are kept.
// Username is the key and Role is immutable.
type UpdateUser struct {
	Password *string
	ID       *string
	Name     *string
}

func (uu UpdateUser) apply(usr *User) {
	if uu.Password != nil {
		usr.Password = *uu.Password
	}
	if uu.ID != nil {
		usr.ID = *uu.ID
	}
	if uu.Name != nil {
		usr.Name = *uu.Name
	}
}

// NewMirror builds the login User of a Student or Faculty record.
// An empty username falls back to the lowered id; the password is always the role default.
func NewMirror(role Role, id, username, name string) User {
	if username == "" {
		username = strings.ToLower(id)
	}
	return User{
		Username: username,
		Password: DefaultPasswords[role],
		Role:     role,
		ID:       id,
		Name:     name,
	}
}
