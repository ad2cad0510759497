package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/announcement"
	"github.com/trezcool/portal/core/attendance"
	"github.com/trezcool/portal/core/faculty"
	"github.com/trezcool/portal/core/marks"
	"github.com/trezcool/portal/core/report"
	"github.com/trezcool/portal/core/session"
	"github.com/trezcool/portal/core/store"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/subject"
	"github.com/trezcool/portal/core/user"
	logsvc "github.com/trezcool/portal/services/logger"
	"github.com/trezcool/portal/storage"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stderr, "PORTAL : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func newStore(conf *core.Config, logger core.Logger, reg *prometheus.Registry) (*storage.Store, error) {
	var registerer prometheus.Registerer
	if conf.Metrics {
		registerer = reg
	}
	return storage.Open(conf, logger, registerer)
}

func newKV(s *storage.Store) store.KV {
	return s
}

type cliParams struct {
	dig.In

	KV            store.KV
	Validate      *core.Validator
	Session       *session.Session
	Users         *user.Repository
	Students      *student.Repository
	Faculty       *faculty.Repository
	Subjects      *subject.Repository
	Attendance    *attendance.Repository
	Marks         *marks.Repository
	Announcements *announcement.Repository
	Reports       *report.Service
}

func newCommandLine(p cliParams) *commandLine {
	return &commandLine{
		out:           os.Stdout,
		kv:            p.KV,
		validate:      p.Validate,
		sess:          p.Session,
		users:         p.Users,
		students:      p.Students,
		faculty:       p.Faculty,
		subjects:      p.Subjects,
		attendance:    p.Attendance,
		marks:         p.Marks,
		announcements: p.Announcements,
		reports:       p.Reports,
	}
}

// newContainer returns the dependency injection dig.Container of the CLI.
func newContainer() *dig.Container {
	c := dig.New()

	provide(c, core.NewConfig)
	provide(c, newLogger)
	provide(c, newRegistry)
	provide(c, newStore)
	provide(c, newKV)
	provide(c, core.NewValidator)
	provide(c, user.NewRepository)
	provide(c, student.NewRepository)
	provide(c, faculty.NewRepository)
	provide(c, subject.NewRepository)
	provide(c, attendance.NewRepository)
	provide(c, marks.NewRepository)
	provide(c, announcement.NewRepository)
	provide(c, session.New)
	provide(c, report.NewService)
	provide(c, newCommandLine)

	return c
}

// provide exits the program if the constructor cannot be provided.
func provide(c *dig.Container, constructor interface{}) {
	if err := c.Provide(constructor); err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
