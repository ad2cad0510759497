// Package session keeps track of the logged in user.
package session

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrPermissionDenied   = errors.New("permission denied")
)

// IsAuthError reports whether err is caused by a failed login or a missing / insufficient session.
func IsAuthError(err error) bool {
	switch errors.Cause(err) {
	case ErrInvalidCredentials, ErrNotLoggedIn, ErrPermissionDenied:
		return true
	}
	return false
}

// Credentials are matched as given: no trimming, blank values included.
type Credentials struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     user.Role `json:"role"`
}

// Session persists the logged in user under the currentUser key.
type Session struct {
	current *store.Slot[user.User]
	users   *user.Repository
	logger  core.Logger
}

func New(kv store.KV, users *user.Repository, logger core.Logger) *Session {
	return &Session{
		current: store.NewSlot[user.User](kv, store.CurrentUser),
		users:   users,
		logger:  logger,
	}
}

// Login looks up the first User matching all three credentials and makes it the current user.
// Any mismatch is ErrInvalidCredentials and leaves the current user as it was.
func (s *Session) Login(ctx context.Context, creds Credentials) (user.User, error) {
	usr, found, err := s.users.FindByCredentials(ctx, creds.Username, creds.Password, creds.Role)
	if err != nil {
		return user.User{}, err
	}
	if !found {
		s.logger.Warn(fmt.Sprintf("failed login for %q as %s", creds.Username, creds.Role))
		return user.User{}, ErrInvalidCredentials
	}

	if err = s.current.Set(ctx, usr); err != nil {
		return user.User{}, err
	}
	s.logger.Info("logged in", usr)
	return usr, nil
}

// Logout clears the current user, whether or not one is logged in.
func (s *Session) Logout(ctx context.Context) error {
	return s.current.Clear(ctx)
}

func (s *Session) Current(ctx context.Context) (user.User, bool, error) {
	return s.current.Get(ctx)
}

// Require returns the current user if it has the given role.
func (s *Session) Require(ctx context.Context, role user.Role) (user.User, error) {
	usr, ok, err := s.current.Get(ctx)
	if err != nil {
		return user.User{}, err
	}
	if !ok {
		return user.User{}, ErrNotLoggedIn
	}
	if usr.Role != role {
		return usr, errors.Wrap(ErrPermissionDenied, fmt.Sprintf("%s required", role))
	}
	return usr, nil
}
