package logsvc

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/user"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Env: "TEST", Build: "test"})
	logger.Enable(false)

	usr := user.User{Username: "student1", Password: "student123", Role: user.RoleStudent, ID: "STU001"}
	logger.Info("logged in", usr)
	logger.Warn("failed login", map[string]interface{}{"username": "nobody"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] logged in")
	assert.Contains(t, out, "user: student1 (student)")
	assert.NotContains(t, out, "student123", "passwords are never logged")
	assert.Contains(t, out, "[WARN] failed login")
	assert.Contains(t, out, "username:nobody")
}

func TestPerson(t *testing.T) {
	assert.Equal(t, "STU001", person(user.User{Username: "student1", ID: "STU001"}))
	assert.Equal(t, "admin", person(user.User{Username: "admin"}))
}
