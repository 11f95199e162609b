package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Profiles(ctx context.Context) error {
	f.calls = append(f.calls, "profiles")
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Jobs(ctx context.Context) error { f.calls = append(f.calls, "jobs"); return nil }
func (f *fakeExec) Apply(ctx context.Context, jobID string) error {
	f.calls = append(f.calls, "apply")
	f.arg = jobID
	return nil
}

func silencePrint(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i], _ = v.(string)
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrint(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"whoami",
		"profiles",
		"dashboard",
		"jobs",
		"apply 11",
		"foobar",
		"logout",
		"exit",
		"jobs",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input)

	want := []string{"login", "whoami", "profiles", "dashboard", "jobs", "apply", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if exec.arg != "11" {
		t.Fatalf("apply arg = %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	printed := silencePrint(t)

	input := bufio.NewReader(strings.NewReader("apply\n\nquit\n"))
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, input)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "Usage: apply <job-id>") || !strings.Contains(joined, "Bye!") {
		t.Fatalf("output = %q", joined)
	}
}

func TestRunREPL_StopsOnEOFAndCanceledContext(t *testing.T) {
	silencePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("jobs")))
	if len(exec.calls) != 1 {
		t.Fatalf("calls = %v", exec.calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("jobs\n")))
	if len(exec.calls) != 0 {
		t.Fatalf("calls after cancel = %v", exec.calls)
	}
}
