package main

import (
	"context"
	"fmt"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/announcement"
	"github.com/trezcool/portal/core/session"
	"github.com/trezcool/portal/core/user"
)

func (cli *commandLine) announce(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("announce")
	code := fs.String("subject", announcement.AllSubjects, "A subject code, or all.")
	title := fs.String("title", "", "The title.")
	message := fs.String("message", "", "The message.")
	if err := parse(fs, args); err != nil {
		return err
	}
	if core.CleanString(*title) == "" || core.CleanString(*message) == "" {
		fs.Usage()
		return errHelp
	}

	usr, err := cli.sess.Require(ctx, user.RoleFaculty)
	if err != nil {
		return err
	}
	ann := announcement.New(core.CleanString(*title), core.CleanString(*message), *code, usr.ID, usr.Name)
	if ann.Target == announcement.TargetSubject {
		subj, err := cli.taughtSubject(ctx, usr, *code)
		if err != nil {
			return err
		}
		ann.Department, ann.Year = subj.Department, subj.Year
	}

	if ann, err = cli.announcements.Add(ctx, ann); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Announcement %s posted.\n", ann.ID)
	return nil
}

// listAnnouncements lists what the current user can see: students every announcement, optionally
// narrowed to a subject, faculty their own and the admin all of them.
func (cli *commandLine) listAnnouncements(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("announcements")
	code := fs.String("subject", "", "Only announcements for everyone or for this subject.")
	n := fs.Int("n", 0, "Show the N most recent only.")
	if err := parse(fs, args); err != nil {
		return err
	}
	usr, ok, err := cli.sess.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrNotLoggedIn
	}

	list, err := cli.announcements.All(ctx)
	if err != nil {
		return err
	}
	switch usr.Role {
	case user.RoleFaculty:
		list = announcement.ByFaculty(list, usr.ID)
	default:
		list = announcement.ForSubject(list, *code)
	}
	if *n > 0 {
		list = announcement.Recent(list, *n)
	}
	if len(list) == 0 {
		fmt.Fprintln(cli.out, "No announcements available.")
		return nil
	}

	for _, ann := range list {
		target := ann.SubjectCode
		if ann.Target == announcement.TargetAll {
			target = "All Subjects"
		}
		fmt.Fprintf(cli.out, "%s\n  %s | %s | %s\n  %s\n", ann.Title, day(ann.Date), ann.FacultyName, target, ann.Message)
	}
	return nil
}

func (cli *commandLine) printRecent(list []announcement.Announcement) {
	fmt.Fprintln(cli.out, "\nRecent announcements:")
	if len(list) == 0 {
		fmt.Fprintln(cli.out, "  No announcements yet")
		return
	}
	for _, ann := range list {
		fmt.Fprintf(cli.out, "  %s - %s\n", ann.Title, day(ann.Date))
	}
}

// day returns the date part of an announcement timestamp.
func day(date string) string {
	if len(date) < len("2006-01-02") {
		return date
	}
	return date[:len("2006-01-02")]
}
