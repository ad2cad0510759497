package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trezcool/portal/core/report"
	"github.com/trezcool/portal/core/session"
	"github.com/trezcool/portal/core/user"
)

func (cli *commandLine) stats(ctx context.Context) error {
	if _, err := cli.sess.Require(ctx, user.RoleAdmin); err != nil {
		return err
	}
	stats, err := cli.reports.Statistics(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Students: %d\n", stats.TotalStudents)
	fmt.Fprintf(cli.out, "Faculty: %d\n", stats.TotalFaculty)
	fmt.Fprintf(cli.out, "Subjects: %d\n", stats.TotalSubjects)
	fmt.Fprintf(cli.out, "Departments: %d\n", stats.TotalDepartments)
	return nil
}

// dashboard shows the dashboard of the current user's role.
func (cli *commandLine) dashboard(ctx context.Context) error {
	usr, ok, err := cli.sess.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrNotLoggedIn
	}

	switch usr.Role {
	case user.RoleStudent:
		dash, err := cli.reports.StudentDashboard(ctx, usr.ID)
		if err != nil {
			return err
		}
		s := dash.Student
		fmt.Fprintf(cli.out, "%s (%s) %s, Year %s, %s\n", s.Name, s.ID, s.Department, s.Year, s.Email)
		fmt.Fprintf(cli.out, "Attendance: %s (%d/%d classes) %s\n",
			pct(dash.Attendance.Percentage), dash.Attendance.Present, dash.Attendance.Total, dash.Attendance.Standing)
		fmt.Fprintf(cli.out, "Subjects: %d  Announcements: %d\n\n", dash.TotalSubjects, dash.TotalAnnouncements)

		rows := make([][]string, 0, len(dash.Subjects))
		for _, sa := range dash.Subjects {
			rows = append(rows, []string{sa.Subject.Code, sa.Subject.Name, pct(sa.Summary.Percentage)})
		}
		if err = cli.table([]string{"CODE", "SUBJECT", "ATTENDANCE"}, rows); err != nil {
			return err
		}
		cli.printRecent(dash.Recent)
		return nil

	case user.RoleFaculty:
		dash, err := cli.reports.FacultyDashboard(ctx, usr.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s, %s (%s)\n", dash.Faculty.Name, dash.Faculty.Designation, dash.Faculty.Department)
		fmt.Fprintf(cli.out, "Assigned subjects: %d  Students: %d\n\n", len(dash.Subjects), dash.TotalStudents)

		rows := make([][]string, 0, len(dash.Subjects))
		for _, s := range dash.Subjects {
			rows = append(rows, []string{s.Code, s.Name, s.Department, s.Year, strconv.Itoa(s.Credits)})
		}
		if err = cli.table([]string{"CODE", "SUBJECT", "DEPARTMENT", "YEAR", "CREDITS"}, rows); err != nil {
			return err
		}
		cli.printRecent(dash.Recent)
		return nil

	default:
		return cli.stats(ctx)
	}
}

func (cli *commandLine) timetable(ctx context.Context) error {
	usr, err := cli.sess.Require(ctx, user.RoleStudent)
	if err != nil {
		return err
	}
	slots, err := cli.reports.Timetable(ctx, usr.ID)
	if err != nil {
		return err
	}

	header := append([]string{"TIME"}, report.Days...)
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		row := []string{slot.Time}
		if slot.Lunch {
			rows = append(rows, append(row, "LUNCH BREAK"))
			continue
		}
		for _, cell := range slot.Cells {
			if cell == nil {
				row = append(row, "-")
				continue
			}
			row = append(row, cell.Code)
		}
		rows = append(rows, row)
	}
	return cli.table(header, rows)
}
