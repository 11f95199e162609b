package cli

import (
	"context"
	"fmt"
	"time"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates the account.
// Successful registration logs the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.session.RegisterUser(ctx, name, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", userMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	a.printLanding(ctx)
	return nil
}

// Login prompts for credentials and authenticates. On success it prints
// where the user should continue: the dashboard, or the profile form when
// no profile exists yet.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if _, _, err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", userMessage(err))
		return err
	}

	a.printLanding(ctx)
	return nil
}

func (a *App) printLanding(ctx context.Context) {
	user := a.session.Snapshot().CurrentUser
	fmt.Fprintln(a.out, "Continue at", a.session.LandingRoute(ctx, user))
}

// Logout ends the session locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", userMessage(err))
		return err
	}
	return nil
}

// WhoAmI prints the current user and when their session was saved.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.CurrentUser == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	u := snap.CurrentUser
	fmt.Fprintf(a.out, "%s <%s>\nrole: %s\nid: %s\n", u.Name, u.Email, u.Role, u.ID)
	if u.Joined != "" {
		fmt.Fprintf(a.out, "joined: %s\n", u.Joined)
	}
	if a.store == nil {
		return nil
	}
	at, ok, err := a.store.SavedAt(ctx)
	if err != nil {
		a.log.Warn(ctx, "read session timestamp", "error", err)
		return nil
	}
	if ok {
		fmt.Fprintf(a.out, "session saved: %s\n", at.Local().Format(time.DateTime))
	}
	return nil
}
