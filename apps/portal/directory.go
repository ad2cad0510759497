package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/faculty"
	"github.com/trezcool/portal/core/student"
	"github.com/trezcool/portal/core/subject"
	"github.com/trezcool/portal/core/user"
)

var errNoMatch = errors.New("no such record")

func (cli *commandLine) studentsCmd(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand("students", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	if _, err = cli.sess.Require(ctx, user.RoleAdmin); err != nil {
		return err
	}

	fs := cli.newFlagSet("students " + sub)
	switch sub {
	case "list":
		var filter student.QueryFilter
		fs.StringVar(&filter.Search, "search", "", "Search in name, id or email.")
		fs.StringVar(&filter.Department, "department", "", "Exact department.")
		fs.StringVar(&filter.Year, "year", "", "Exact year.")
		asJSON := fs.Bool("json", false, "Print JSON.")
		if err = parse(fs, args); err != nil {
			return err
		}
		all, err := cli.students.All(ctx)
		if err != nil {
			return err
		}
		found := student.Filter(all, filter)
		if *asJSON {
			return cli.printJSON(found)
		}
		rows := make([][]string, 0, len(found))
		for _, s := range found {
			rows = append(rows, []string{s.ID, s.Name, s.Department, s.Year, s.Email, s.Phone})
		}
		return cli.table([]string{"ID", "NAME", "DEPARTMENT", "YEAR", "EMAIL", "PHONE"}, rows)

	case "add":
		var s student.Student
		studentFlags(fs, &s.ID, &s.Name, &s.Email, &s.Phone, &s.Department, &s.Year)
		if err = parse(fs, args); err != nil {
			return err
		}
		s.Username = strings.ToLower(s.ID)
		s.Password = user.DefaultPasswords[user.RoleStudent]
		if err = cli.validate.Struct(s); err != nil {
			return err
		}
		if err = cli.students.Add(ctx, s); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Student %s added; login %q with the default password.\n", s.ID, s.Username)
		return nil

	case "update":
		var s student.Student
		studentFlags(fs, &s.ID, &s.Name, &s.Email, &s.Phone, &s.Department, &s.Year)
		if err = parse(fs, args); err != nil {
			return err
		}
		set := visited(fs)
		id, ok := set["id"]
		if !ok {
			fs.Usage()
			return errHelp
		}
		if _, found, err := cli.students.Get(ctx, id); err != nil {
			return err
		} else if !found {
			return errors.Wrap(errNoMatch, id)
		}
		var us student.UpdateStudent
		for name, val := range set {
			val := val
			switch name {
			case "name":
				us.Name = &val
			case "email":
				us.Email = &val
			case "phone":
				us.Phone = &val
			case "department":
				us.Department = &val
			case "year":
				us.Year = &val
			}
		}
		if err = cli.students.Update(ctx, id, us); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Student %s updated.\n", id)
		return nil

	default: // delete
		id := fs.String("id", "", "The student id.")
		if err = parse(fs, args); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		if err = cli.students.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Student %s deleted.\n", *id)
		return nil
	}
}

func studentFlags(fs *flag.FlagSet, id, name, email, phone, department, year *string) {
	fs.StringVar(id, "id", "", "The student id, eg. STU010.")
	fs.StringVar(name, "name", "", "Full name.")
	fs.StringVar(email, "email", "", "Email address.")
	fs.StringVar(phone, "phone", "", "Phone number.")
	fs.StringVar(department, "department", "", "Department, eg. CSE.")
	fs.StringVar(year, "year", "", "Year of study, 1 to 4.")
}

func (cli *commandLine) facultyCmd(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand("faculty", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	if _, err = cli.sess.Require(ctx, user.RoleAdmin); err != nil {
		return err
	}

	fs := cli.newFlagSet("faculty " + sub)
	switch sub {
	case "list":
		var filter faculty.QueryFilter
		fs.StringVar(&filter.Search, "search", "", "Search in name, id or email.")
		fs.StringVar(&filter.Department, "department", "", "Exact department.")
		asJSON := fs.Bool("json", false, "Print JSON.")
		if err = parse(fs, args); err != nil {
			return err
		}
		all, err := cli.faculty.All(ctx)
		if err != nil {
			return err
		}
		found := faculty.Filter(all, filter)
		if *asJSON {
			return cli.printJSON(found)
		}
		rows := make([][]string, 0, len(found))
		for _, f := range found {
			rows = append(rows, []string{f.ID, f.Name, f.Department, f.Designation, f.Email, f.Phone})
		}
		return cli.table([]string{"ID", "NAME", "DEPARTMENT", "DESIGNATION", "EMAIL", "PHONE"}, rows)

	case "add":
		var f faculty.Faculty
		facultyFlags(fs, &f.ID, &f.Name, &f.Email, &f.Phone, &f.Department, &f.Designation)
		if err = parse(fs, args); err != nil {
			return err
		}
		f.Username = strings.ToLower(f.ID)
		f.Password = user.DefaultPasswords[user.RoleFaculty]
		if err = cli.validate.Struct(f); err != nil {
			return err
		}
		if err = cli.faculty.Add(ctx, f); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Faculty %s added; login %q with the default password.\n", f.ID, f.Username)
		return nil

	case "update":
		var f faculty.Faculty
		facultyFlags(fs, &f.ID, &f.Name, &f.Email, &f.Phone, &f.Department, &f.Designation)
		if err = parse(fs, args); err != nil {
			return err
		}
		set := visited(fs)
		id, ok := set["id"]
		if !ok {
			fs.Usage()
			return errHelp
		}
		if _, found, err := cli.faculty.Get(ctx, id); err != nil {
			return err
		} else if !found {
			return errors.Wrap(errNoMatch, id)
		}
		var uf faculty.UpdateFaculty
		for name, val := range set {
			val := val
			switch name {
			case "name":
				uf.Name = &val
			case "email":
				uf.Email = &val
			case "phone":
				uf.Phone = &val
			case "department":
				uf.Department = &val
			case "designation":
				uf.Designation = &val
			}
		}
		if err = cli.faculty.Update(ctx, id, uf); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Faculty %s updated.\n", id)
		return nil

	default: // delete
		id := fs.String("id", "", "The faculty id.")
		if err = parse(fs, args); err != nil {
			return err
		}
		if *id == "" {
			fs.Usage()
			return errHelp
		}
		if err = cli.faculty.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Faculty %s deleted.\n", *id)
		return nil
	}
}

func facultyFlags(fs *flag.FlagSet, id, name, email, phone, department, designation *string) {
	fs.StringVar(id, "id", "", "The faculty id, eg. FAC005.")
	fs.StringVar(name, "name", "", "Full name.")
	fs.StringVar(email, "email", "", "Email address.")
	fs.StringVar(phone, "phone", "", "Phone number.")
	fs.StringVar(department, "department", "", "Department, eg. CSE.")
	fs.StringVar(designation, "designation", "", "Designation, eg. Professor.")
}

func (cli *commandLine) subjectsCmd(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand("subjects", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}
	if _, err = cli.sess.Require(ctx, user.RoleAdmin); err != nil {
		return err
	}

	fs := cli.newFlagSet("subjects " + sub)
	switch sub {
	case "list":
		var filter subject.QueryFilter
		fs.StringVar(&filter.Search, "search", "", "Search in name or code.")
		fs.StringVar(&filter.Department, "department", "", "Exact department.")
		fs.StringVar(&filter.Year, "year", "", "Exact year.")
		asJSON := fs.Bool("json", false, "Print JSON.")
		if err = parse(fs, args); err != nil {
			return err
		}
		all, err := cli.subjects.All(ctx)
		if err != nil {
			return err
		}
		fac, err := cli.faculty.All(ctx)
		if err != nil {
			return err
		}
		found := subject.Assign(subject.Filter(all, filter), fac)
		if *asJSON {
			return cli.printJSON(found)
		}
		rows := make([][]string, 0, len(found))
		for _, a := range found {
			rows = append(rows, []string{a.Code, a.Name, a.Department, a.Year, strconv.Itoa(a.Credits), a.FacultyName})
		}
		return cli.table([]string{"CODE", "NAME", "DEPARTMENT", "YEAR", "CREDITS", "FACULTY"}, rows)

	case "add":
		var s subject.Subject
		subjectFlags(fs, &s)
		if err = parse(fs, args); err != nil {
			return err
		}
		if err = cli.validate.Struct(s); err != nil {
			return err
		}
		if err = cli.subjects.Add(ctx, s); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Subject %s added.\n", s.Code)
		return nil

	case "update":
		var s subject.Subject
		subjectFlags(fs, &s)
		if err = parse(fs, args); err != nil {
			return err
		}
		set := visited(fs)
		code, ok := set["code"]
		if !ok {
			fs.Usage()
			return errHelp
		}
		if _, found, err := cli.subjects.Get(ctx, code); err != nil {
			return err
		} else if !found {
			return errors.Wrap(errNoMatch, code)
		}
		var us subject.UpdateSubject
		for name := range set {
			switch name {
			case "name":
				us.Name = &s.Name
			case "department":
				us.Department = &s.Department
			case "year":
				us.Year = &s.Year
			case "credits":
				us.Credits = &s.Credits
			case "faculty":
				us.FacultyID = &s.FacultyID
			}
		}
		if err = cli.subjects.Update(ctx, code, us); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Subject %s updated.\n", code)
		return nil

	default: // delete
		code := fs.String("code", "", "The subject code.")
		if err = parse(fs, args); err != nil {
			return err
		}
		if *code == "" {
			fs.Usage()
			return errHelp
		}
		if err = cli.subjects.Delete(ctx, *code); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Subject %s deleted.\n", *code)
		return nil
	}
}

func subjectFlags(fs *flag.FlagSet, s *subject.Subject) {
	fs.StringVar(&s.Code, "code", "", "The subject code, eg. CS303.")
	fs.StringVar(&s.Name, "name", "", "Subject name.")
	fs.StringVar(&s.Department, "department", "", "Department, eg. CSE.")
	fs.StringVar(&s.Year, "year", "", "Year of study, 1 to 4.")
	fs.IntVar(&s.Credits, "credits", 0, "Credits.")
	fs.StringVar(&s.FacultyID, "faculty", "", "Id of the teaching faculty.")
}
