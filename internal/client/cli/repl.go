package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profiles(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Jobs(ctx context.Context) error
	Apply(ctx context.Context, jobID string) error
}

var _ execIface = (*App)(nil)

// runREPL starts a simple read–eval–print loop for the workforce CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when the user types "exit" or "quit", or
// when ctx is done.
//
// Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account (logs in on success)
//	  - login          authenticate
//	  - jobs           list open jobs
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - whoami         show the current user
//	  - profiles       show worker/employer profiles
//	  - dashboard      show the dashboard for your role
//	  - jobs           list open jobs
//	  - apply <id>     apply to a job
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("wf %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profiles, dashboard, jobs, apply <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, jobs, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profiles":
			_ = a.Profiles(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "jobs":
			_ = a.Jobs(ctx)

		case "apply":
			if len(args) == 0 {
				printlnFn("Usage: apply <job-id>")
				continue
			}
			_ = a.Apply(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
