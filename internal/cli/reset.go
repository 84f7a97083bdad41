package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/uniaodigital/learnhub/internal/security"
	"github.com/uniaodigital/learnhub/internal/users"
)

// resetPassword runs the password recovery flow. The registered location and
// age are the sole identity proof. Unlike login, this flow does tell the
// operator whether the username exists; that asymmetry is long-standing
// platform behavior.
func (a *App) resetPassword(ctx context.Context) {
	a.printBanner("Password Recovery")

	username, err := GetSimpleText(a.reader, "Enter your username", a.out)
	if err != nil {
		a.log.Error(ctx, "read username", "error", err)
		return
	}
	location, err := GetSimpleText(a.reader, "Enter your registered city/state", a.out)
	if err != nil {
		a.log.Error(ctx, "read location", "error", err)
		return
	}
	age, err := GetInt(a.reader, "Enter your registered age", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid age.")
		return
	}

	for {
		newPassword, err := GetPassword("Enter the new password", a.out)
		if err != nil {
			a.log.Error(ctx, "read new password", "error", err)
			return
		}
		if !security.IsValidPassword(newPassword) {
			fmt.Fprintln(a.out, "The password does not meet the security requirements. Try again.")
			continue
		}

		err = a.session.ResetPassword(ctx, username, location, age, newPassword)
		switch {
		case errors.Is(err, users.ErrNotFound):
			fmt.Fprintln(a.out, "User not found.")
		case errors.Is(err, users.ErrVerificationMismatch):
			fmt.Fprintln(a.out, "Verification data is incorrect. The password could not be reset.")
		case err != nil:
			a.log.Error(ctx, "reset password", "error", err)
			fmt.Fprintln(a.out, "Password reset failed. Try again later.")
		default:
			fmt.Fprintln(a.out, "Password reset successfully!")
		}
		a.pause()
		return
	}
}
