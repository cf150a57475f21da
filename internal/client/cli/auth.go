package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookarc/internal/client/services"
	"github.com/dmitrijs2005/bookarc/internal/common"
)

// getSimpleText, getSecret and getMultiline are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret
var getMultiline = GetMultiline

// readSecret prompts for a secret and returns it as a string. The byte
// slice read from the terminal is wiped before returning.
func (a *App) readSecret(prompt string) (string, error) {
	b, err := getSecret(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return string(b), nil
}

// Register prompts for the account details and creates the account at the
// identity provider. The user still has to confirm the emailed code.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	res, err := a.auth.Register(ctx, services.RegisterData{
		Email:       email,
		Password:    password,
		Username:    username,
		DisplayName: displayName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	if !res.UserConfirmed {
		fmt.Fprintln(a.out, "Type 'confirm' once the code arrives.")
	}
	return nil
}

// Confirm submits the emailed verification code.
func (a *App) Confirm(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.ConfirmSignUp(ctx, email, code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account confirmed. You can now log in.")
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ResendVerificationCode(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Verification code sent.")
	return nil
}

// Login prompts for credentials and signs in. The session is persisted by
// the auth service, so it survives restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	s, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", clean(s.Username))
	return nil
}

// ForgotPassword requests a reset code and then sets the new password.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A reset code was sent to your email.")

	code, err := getSimpleText(a.reader, "Enter reset code", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("New password")
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, email, code, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset. You can now log in.")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := a.readSecret("Current password")
	if err != nil {
		return err
	}
	newPassword, err := a.readSecret("New password")
	if err != nil {
		return err
	}
	if err := a.auth.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// Logout drops the local session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
