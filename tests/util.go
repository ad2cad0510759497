package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/seed"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/user"
	"github.com/trezcool/portal/storage/kv/memkv"
)

// SeededKV returns an in-memory store holding the demo dataset.
func SeededKV(t *testing.T) *memkv.DB {
	t.Helper()
	kv := memkv.Open()
	if _, err := seed.Initialize(context.Background(), kv); err != nil {
		t.Fatalf("seed.Initialize() failed: %v", err)
	}
	return kv
}

func CreateStudent(t *testing.T, repo *student.Repository, id, name, department, year string) student.Student {
	t.Helper()
	s := student.Student{
		ID:         id,
		Name:       name,
		Email:      fmt.Sprintf("%s@example.com", id),
		Department: department,
		Year:       year,
	}
	if err := repo.Add(context.Background(), s); err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return s
}

// Entry is a message recorded by Logger.
type Entry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger records log entries in memory.
type Logger struct {
	mu      sync.Mutex
	Entries []Entry
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.log("fatal", msg, args) }

// Levels returns the level of every entry, in order.
func (l *Logger) Levels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	levels := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		levels = append(levels, e.Level)
	}
	return levels
}

// LoggedUser returns the first user.User passed to the logger, if any.
func (l *Logger) LoggedUser() (user.User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		for _, arg := range e.Args {
			if usr, ok := arg.(user.User); ok {
				return usr, true
			}
		}
	}
	return user.User{}, false
}
