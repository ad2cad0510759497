package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"golang.org/x/term"

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
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out           io.Writer
	kv            store.KV
	validate      *core.Validator
	sess          *session.Session
	users         *user.Repository
	students      *student.Repository
	faculty       *faculty.Repository
	subjects      *subject.Repository
	attendance    *attendance.Repository
	marks         *marks.Repository
	announcements *announcement.Repository
	reports       *report.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seed                                  - load the demo data into an empty store")
	fmt.Fprintln(cli.out, "  login -username USERNAME -role ROLE   - log in; the password will be prompted")
	fmt.Fprintln(cli.out, "  logout | whoami")
	fmt.Fprintln(cli.out, "  stats | dashboard | timetable")
	fmt.Fprintln(cli.out, "  students|faculty|subjects list|add|update|delete [flags]   (admin)")
	fmt.Fprintln(cli.out, "  attendance record|report [flags]")
	fmt.Fprintln(cli.out, "  marks record|report [flags]")
	fmt.Fprintln(cli.out, "  announce -subject CODE|all -title TITLE -message MESSAGE   (faculty)")
	fmt.Fprintln(cli.out, "  announcements [-subject CODE] [-n N]")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()
	switch args[1] {
	case "seed":
		return cli.seed(ctx)
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout(ctx)
	case "whoami":
		return cli.whoami(ctx)
	case "stats":
		return cli.stats(ctx)
	case "dashboard":
		return cli.dashboard(ctx)
	case "timetable":
		return cli.timetable(ctx)
	case "students":
		return cli.studentsCmd(ctx, args[2:])
	case "faculty":
		return cli.facultyCmd(ctx, args[2:])
	case "subjects":
		return cli.subjectsCmd(ctx, args[2:])
	case "attendance":
		return cli.attendanceCmd(ctx, args[2:])
	case "marks":
		return cli.marksCmd(ctx, args[2:])
	case "announce":
		return cli.announce(ctx, args[2:])
	case "announcements":
		return cli.listAnnouncements(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// printError writes err for the user, listing the invalid fields of a validation error.
func (cli *commandLine) printError(err error) {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(cli.out, "error: %v\n", verr)
		for _, fe := range verr.Fields {
			fmt.Fprintf(cli.out, "  %s: %s\n", fe.Field, fe.Error)
		}
		return
	}
	fmt.Fprintf(cli.out, "error: %v\n", err)
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// parse parses args with fs, turning a help request into errHelp.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

// subcommand splits args into the subcommand and its flags.
func (cli *commandLine) subcommand(name string, args []string, allowed ...string) (string, []string, error) {
	if len(args) == 0 {
		fmt.Fprintf(cli.out, "Usage: %s %s [flags]\n", name, strings.Join(allowed, "|"))
		return "", nil, errHelp
	}
	for _, sub := range allowed {
		if args[0] == sub {
			return sub, args[1:], nil
		}
	}
	fmt.Fprintf(cli.out, "Usage: %s %s [flags]\n", name, strings.Join(allowed, "|"))
	return "", nil, errHelp
}

// visited returns the value of every flag set on the command line.
func visited(fs *flag.FlagSet) map[string]string {
	set := make(map[string]string)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	return set
}

func (cli *commandLine) table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func (cli *commandLine) printJSON(v interface{}) error {
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(s string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(s, ",") {
		if item = core.CleanString(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func pct(f float64) string {
	return fmt.Sprintf("%.2f%%", f)
}
