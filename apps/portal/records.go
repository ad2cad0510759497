package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/attendance"
	"github.com/trezcool/portal/core/marks"
	"github.com/trezcool/portal/core/session"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/subject"
	"github.com/trezcool/portal/core/user"
)

var (
	todayFunc = func() string { return time.Now().Format("2006-01-02") } // mockable

	errNotInClass = errors.New("student not in class")
)

// taughtSubject returns the Subject of code if the faculty usr teaches it.
func (cli *commandLine) taughtSubject(ctx context.Context, usr user.User, code string) (subject.Subject, error) {
	sub, found, err := cli.subjects.Get(ctx, code)
	if err != nil {
		return subject.Subject{}, err
	}
	if !found {
		return subject.Subject{}, errors.Wrap(errNoMatch, code)
	}
	if sub.FacultyID != usr.ID {
		return subject.Subject{}, errors.Wrap(session.ErrPermissionDenied, fmt.Sprintf("%s is not taught by %s", code, usr.ID))
	}
	return sub, nil
}

// roster returns the ids of the students taking sub.
func (cli *commandLine) roster(ctx context.Context, sub subject.Subject) ([]string, error) {
	all, err := cli.students.All(ctx)
	if err != nil {
		return nil, err
	}
	class := student.InClass(all, sub.Department, sub.Year)
	ids := make([]string, 0, len(class))
	for _, s := range class {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func inRoster(roster []string, id string) bool {
	for _, r := range roster {
		if r == id {
			return true
		}
	}
	return false
}

func (cli *commandLine) attendanceCmd(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand("attendance", args, "record", "report")
	if err != nil {
		return err
	}
	fs := cli.newFlagSet("attendance " + sub)

	if sub == "record" {
		code := fs.String("subject", "", "The subject code.")
		date := fs.String("date", todayFunc(), "Date of the class, YYYY-MM-DD.")
		present := fs.String("present", "", "Comma separated ids of the present students; the others are marked absent.")
		if err = parse(fs, args); err != nil {
			return err
		}
		if *code == "" {
			fs.Usage()
			return errHelp
		}
		if _, err = time.Parse("2006-01-02", *date); err != nil {
			return errors.Wrap(err, "invalid date")
		}

		usr, err := cli.sess.Require(ctx, user.RoleFaculty)
		if err != nil {
			return err
		}
		subj, err := cli.taughtSubject(ctx, usr, *code)
		if err != nil {
			return err
		}
		roster, err := cli.roster(ctx, subj)
		if err != nil {
			return err
		}
		marked := make(map[string]attendance.Status)
		for _, id := range splitList(*present) {
			if !inRoster(roster, id) {
				return errors.Wrap(errNotInClass, id)
			}
			marked[id] = attendance.StatusPresent
		}

		records, err := cli.attendance.RecordSession(ctx, subj.Code, *date, roster, marked)
		if err != nil {
			return err
		}
		sum := attendance.Summarize(records)
		fmt.Fprintf(cli.out, "Attendance of %s on %s: %d present, %d absent.\n", subj.Code, *date, sum.Present, sum.Absent)
		return nil
	}

	// report
	department := fs.String("department", "", "Exact department (admin).")
	year := fs.String("year", "", "Exact year (admin).")
	code := fs.String("subject", "", "The subject code (faculty).")
	if err = parse(fs, args); err != nil {
		return err
	}
	usr, ok, err := cli.sess.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrNotLoggedIn
	}

	header := []string{"ID", "NAME", "TOTAL", "PRESENT", "ABSENT", "PERCENTAGE", "STATUS"}
	switch usr.Role {
	case user.RoleAdmin:
		rows, err := cli.reports.AttendanceReport(ctx, *department, *year)
		if err != nil {
			return err
		}
		lines := make([][]string, 0, len(rows))
		for _, r := range rows {
			lines = append(lines, summaryRow(r.Student.ID, r.Student.Name, r.Summary))
		}
		return cli.table(header, lines)

	case user.RoleFaculty:
		if *code == "" {
			fs.Usage()
			return errHelp
		}
		subj, err := cli.taughtSubject(ctx, usr, *code)
		if err != nil {
			return err
		}
		all, err := cli.students.All(ctx)
		if err != nil {
			return err
		}
		records, err := cli.attendance.ForSubject(ctx, subj.Code)
		if err != nil {
			return err
		}
		class := student.InClass(all, subj.Department, subj.Year)
		lines := make([][]string, 0, len(class))
		for _, s := range class {
			lines = append(lines, summaryRow(s.ID, s.Name, attendance.Rollup(records, s.ID, "")))
		}
		return cli.table(header, lines)

	default:
		records, err := cli.attendance.ForStudent(ctx, usr.ID)
		if err != nil {
			return err
		}
		subjects, err := cli.subjects.All(ctx)
		if err != nil {
			return err
		}
		s, found, err := cli.students.Get(ctx, usr.ID)
		if err != nil {
			return err
		}
		if !found {
			return errors.Wrap(errNoMatch, usr.ID)
		}
		taken := subject.ForClass(subjects, s.Department, s.Year)
		if *code != "" {
			taken = subject.Filter(taken, subject.QueryFilter{Search: *code})
		}
		lines := make([][]string, 0, len(taken))
		for _, subj := range taken {
			lines = append(lines, summaryRow(subj.Code, subj.Name, attendance.Rollup(records, usr.ID, subj.Code)))
		}
		header[0], header[1] = "CODE", "SUBJECT"
		return cli.table(header, lines)
	}
}

func summaryRow(id, name string, sum attendance.Summary) []string {
	return []string{
		id, name,
		strconv.Itoa(sum.Total), strconv.Itoa(sum.Present), strconv.Itoa(sum.Absent),
		pct(sum.Percentage), string(sum.Standing),
	}
}

func (cli *commandLine) marksCmd(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand("marks", args, "record", "report")
	if err != nil {
		return err
	}
	fs := cli.newFlagSet("marks " + sub)

	if sub == "record" {
		code := fs.String("subject", "", "The subject code.")
		kind := fs.String("type", "", "Assessment type, eg. Quiz, Midterm.")
		maxMarks := fs.Float64("max", 100, "Maximum marks.")
		obtained := fs.String("marks", "", "Comma separated ID=MARKS pairs; missing students get 0.")
		if err = parse(fs, args); err != nil {
			return err
		}
		if *code == "" || *kind == "" {
			fs.Usage()
			return errHelp
		}
		if *maxMarks <= 0 {
			return errors.Errorf("max marks must be positive, got %v", *maxMarks)
		}

		usr, err := cli.sess.Require(ctx, user.RoleFaculty)
		if err != nil {
			return err
		}
		subj, err := cli.taughtSubject(ctx, usr, *code)
		if err != nil {
			return err
		}
		roster, err := cli.roster(ctx, subj)
		if err != nil {
			return err
		}
		scores := make(map[string]float64)
		for _, pair := range splitList(*obtained) {
			id, val, ok := strings.Cut(pair, "=")
			if !ok {
				return errors.Errorf("%q: expected ID=MARKS", pair)
			}
			if !inRoster(roster, id) {
				return errors.Wrap(errNotInClass, id)
			}
			score, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return errors.Wrapf(err, "marks of %s", id)
			}
			scores[id] = score
		}

		records, err := cli.marks.RecordAssessment(ctx, subj.Code, *kind, *maxMarks, roster, scores)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s marks of %s recorded for %d students.\n", *kind, subj.Code, len(records))
		return nil
	}

	// report
	code := fs.String("subject", "", "The subject code.")
	studentID := fs.String("student", "", "The student id (admin, faculty).")
	if err = parse(fs, args); err != nil {
		return err
	}
	usr, ok, err := cli.sess.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrNotLoggedIn
	}

	switch usr.Role {
	case user.RoleStudent:
		*studentID = usr.ID
	case user.RoleFaculty:
		if *code == "" {
			fs.Usage()
			return errHelp
		}
		if _, err = cli.taughtSubject(ctx, usr, *code); err != nil {
			return err
		}
	}

	all, err := cli.marks.All(ctx)
	if err != nil {
		return err
	}
	scored := marks.Rollup(all, *studentID, *code)
	rows := make([][]string, 0, len(scored))
	for _, s := range scored {
		rows = append(rows, []string{
			s.StudentID, s.SubjectCode, s.AssessmentType,
			fmt.Sprintf("%g/%g", s.MarksObtained, s.MaxMarks), pct(s.Percentage), string(s.Grade),
		})
	}
	if err = cli.table([]string{"STUDENT", "SUBJECT", "ASSESSMENT", "MARKS", "PERCENTAGE", "GRADE"}, rows); err != nil {
		return err
	}

	if usr.Role == user.RoleStudent {
		fmt.Fprintln(cli.out)
		totals := marks.BySubject(marks.Select(all, usr.ID, *code))
		rows = make([][]string, 0, len(totals))
		for _, t := range totals {
			rows = append(rows, []string{
				t.SubjectCode, strconv.Itoa(t.Count),
				fmt.Sprintf("%g/%g", t.Obtained, t.Total), pct(t.Percentage), string(t.Grade),
			})
		}
		return cli.table([]string{"SUBJECT", "ASSESSMENTS", "MARKS", "PERCENTAGE", "GRADE"}, rows)
	}
	return nil
}
