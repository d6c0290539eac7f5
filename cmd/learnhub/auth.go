package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/learnhub-io/learnhub-cli/internal/api"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		name, err := promptLine("Username: ")
		if err != nil {
			return err
		}
		*username = name
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	identity, err := a.session.Login(ctx, api.Credentials{Username: *username, Password: password})
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", identity.Username, identity.Role)
	return nil
}

func (a *app) cmdLogout(ctx context.Context, args []string) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	role := fs.String("role", "STUDENT", "account role (STUDENT or INSTRUCTOR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" {
		return fmt.Errorf("register requires --username and --email")
	}

	if taken, err := a.client.CheckUsername(ctx, *username); err == nil && taken {
		return fmt.Errorf("username %q is already taken", *username)
	}
	if taken, err := a.client.CheckEmail(ctx, *email); err == nil && taken {
		return fmt.Errorf("email %q is already registered", *email)
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	identity, err := a.session.Register(ctx, api.RegisterRequest{
		Username:  *username,
		Email:     *email,
		Password:  password,
		FirstName: *first,
		LastName:  *last,
		Role:      *role,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	fmt.Fprintf(a.out, "Account created. Signed in as %s (%s)\n", identity.Username, identity.Role)
	return nil
}

func (a *app) cmdWhoami(ctx context.Context, args []string) error {
	identity, err := a.requireAuth()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s <%s>\n", identity.FirstName, identity.LastName, identity.Email)
	fmt.Fprintf(a.out, "Username: %s\nRole:     %s\n", identity.Username, identity.Role)
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo when stdin is a terminal.
func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(prompt)
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
