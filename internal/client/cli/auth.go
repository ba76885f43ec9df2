package cli

import (
	"context"
	"errors"

	"github.com/reeflog/reeflog/internal/client/api"
)

// Login prompts for credentials and starts a session. A rejected password is
// reported with the server's own message when one is available.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "- Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server unavailable, try again later")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.userName = displayName(user.Name, user.Email)
	printlnFn("Logged in as", a.userName)
	return nil
}

// Register creates an account and tells the user to log in.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "- Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "- Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, name, email, string(password)); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}
	printlnFn("Account created, you can log in now")
	return nil
}

// RecoverPassword starts the reset flow for an email address.
func (a *App) RecoverPassword(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "- Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.RecoverPassword(ctx, email); err != nil {
		printlnFn("Recovery request failed:", err.Error())
		return err
	}
	printlnFn("Check your inbox for recovery instructions")
	return nil
}

// Logout ends the session. The draft survives a logout on purpose.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
