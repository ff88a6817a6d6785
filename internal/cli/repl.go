package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/teenbridge/skillbridge/internal/store"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() store.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Jobs(ctx context.Context) error
	Apply(ctx context.Context) error
	Profile(ctx context.Context) error
	PostJob(ctx context.Context) error
	MyJobs(ctx context.Context) error
	DeleteJob(ctx context.Context) error
	Applicants(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Skill Bridge CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The command set shown by "help" follows the authenticated role, mirroring
// the original per-role dashboards:
//
//	Not logged in:  register, login, jobs, exit
//	Student:        jobs, apply, profile, logout, exit
//	Provider:       post, myjobs, applicants, delete, profile, logout, exit
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bridge %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: register, login, jobs, exit")
			case a.role() == store.RoleProvider:
				printlnFn("Available commands: post, myjobs, applicants, delete, profile, logout, exit")
			default:
				printlnFn("Available commands: jobs, apply, profile, logout, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "j", "jobs":
			_ = a.Jobs(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "post":
			_ = a.PostJob(ctx)

		case "myjobs":
			_ = a.MyJobs(ctx)

		case "delete":
			_ = a.DeleteJob(ctx)

		case "applicants":
			_ = a.Applicants(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
