package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/store"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup fields and creates a new account.
//
// Field validation happens here, not in the store: name and email must be
// non-empty, the password must have at least minPasswordLength characters
// and the role must be "student" or "job-provider". On success the new
// account becomes the current session, as the original signup flow does.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" || email == "" {
		fmt.Println("Name and email are required.")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		fmt.Printf("Password must be at least %d characters long.\n", minPasswordLength)
		return nil
	}

	roleText, err := getSimpleText(a.reader, "Enter role (student / job-provider)", os.Stdout)
	if err != nil {
		return err
	}
	role := store.Role(roleText)
	if role != store.RoleStudent && role != store.RoleProvider {
		fmt.Println("Role must be either 'student' or 'job-provider'.")
		return nil
	}

	user, err := a.store.CreateUser(ctx, name, email, password, role)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			fmt.Println("An account with this email already exists. Please login instead.")
			return nil
		}
		return err
	}

	if err := a.session.Set(ctx, user.Email); err != nil {
		return err
	}
	a.current = user

	a.printDashboardHint()
	return nil
}

// Login prompts for credentials and authenticates against the store with an
// exact email/password match.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.store.FindUserByCredentials(email, password)
	if err != nil {
		fmt.Println("Invalid email or password. Please try again.")
		return nil
	}

	if err := a.session.Set(ctx, user.Email); err != nil {
		return err
	}
	a.current = user

	a.printDashboardHint()
	return nil
}

// Logout clears the session pointer and the in-memory current user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.current = nil
	fmt.Println("Logged out.")
	return nil
}

// printDashboardHint is the CLI's version of the original's per-role
// dashboard redirect.
func (a *App) printDashboardHint() {
	switch a.current.Role {
	case store.RoleStudent:
		fmt.Printf("Welcome, %s! Browse openings with 'jobs' and apply with 'apply'.\n", a.current.Name)
	case store.RoleProvider:
		fmt.Printf("Welcome, %s! Post openings with 'post' and review applicants with 'applicants'.\n", a.current.Name)
	}
}
