package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/seed"
	"github.com/trezcool/portal/core/session"
	"github.com/trezcool/portal/core/user"
)

func (cli *commandLine) seed(ctx context.Context) error {
	seeded, err := seed.Initialize(ctx, cli.kv)
	if err != nil {
		return err
	}
	if seeded {
		fmt.Fprintln(cli.out, "Portal initialized with the demo data.")
	} else {
		fmt.Fprintln(cli.out, "Portal already initialized.")
	}
	return nil
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("login")
	uname := fs.String("username", "", "The username. The password will be prompted next.")
	roleStr := fs.String("role", "", "One of admin, faculty or student.")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *uname == "" || *roleStr == "" {
		fs.Usage()
		return errHelp
	}
	role, err := user.ParseRole(*roleStr)
	if err != nil {
		return err
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(cli.out)
	if err != nil {
		return errors.Wrap(err, "reading password")
	}

	usr, err := cli.sess.Login(ctx, session.Credentials{Username: *uname, Password: string(pwd), Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Welcome, %s (%s)\n", usr.Name, usr.Role)
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	if err := cli.sess.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out.")
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	usr, ok, err := cli.sess.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrNotLoggedIn
	}
	if usr.ID != "" {
		fmt.Fprintf(cli.out, "%s (%s, %s) %s\n", usr.Username, usr.Role, usr.ID, usr.Name)
	} else {
		fmt.Fprintf(cli.out, "%s (%s) %s\n", usr.Username, usr.Role, usr.Name)
	}
	return nil
}
