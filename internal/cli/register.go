package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/uniaodigital/learnhub/internal/security"
	"github.com/uniaodigital/learnhub/internal/users"
)

// register runs the interactive registration flow: it keeps re-prompting on
// locally detectable problems (weak password, non-positive age) and only
// then hands the parsed values to the session.
func (a *App) register(ctx context.Context) {
	a.printBanner("User Registration")

	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		a.log.Error(ctx, "read username", "error", err)
		return
	}

	var password string
	for {
		password, err = GetPassword("Choose a password (min. 8 characters, with uppercase, lowercase, digits and special characters)", a.out)
		if err != nil {
			a.log.Error(ctx, "read password", "error", err)
			return
		}
		if security.IsValidPassword(password) {
			break
		}
		fmt.Fprintln(a.out, "Error: the password does not meet the security requirements. Try again.")
	}

	var age int
	for {
		age, err = GetInt(a.reader, "Enter your age", a.out)
		if err != nil {
			// Only unparseable answers are worth re-prompting; a broken
			// reader would loop forever.
			if errors.Is(err, ErrNotANumber) {
				fmt.Fprintln(a.out, "Error: invalid age. Enter a positive whole number.")
				continue
			}
			a.log.Error(ctx, "read age", "error", err)
			return
		}
		if age > 0 {
			break
		}
		fmt.Fprintln(a.out, "Error: invalid age. Enter a positive whole number.")
	}

	location, err := GetSimpleText(a.reader, "Enter your city/state", a.out)
	if err != nil {
		a.log.Error(ctx, "read location", "error", err)
		return
	}

	params := users.RegisterParams{
		Username: username,
		Password: password,
		Age:      age,
		Location: location,
	}

	wantAdmin, err := GetYesNo(a.reader, "Are you an administrator?", a.out)
	if err != nil {
		a.log.Error(ctx, "read admin choice", "error", err)
		return
	}
	if wantAdmin {
		attempt, err := GetPassword("Enter the administrator secret", a.out)
		if err != nil {
			a.log.Error(ctx, "read admin secret", "error", err)
			return
		}
		params.RequestAdmin = true
		params.AdminSecretAttempt = attempt
	}

	outcome, err := a.session.Register(ctx, params)
	switch {
	case errors.Is(err, users.ErrDuplicateUsername):
		fmt.Fprintln(a.out, "Error: username already exists. Try again.")
		return
	case errors.Is(err, users.ErrWeakPassword):
		fmt.Fprintln(a.out, "Error: the password does not meet the security requirements.")
		return
	case errors.Is(err, users.ErrInvalidAge):
		fmt.Fprintln(a.out, "Error: invalid age.")
		return
	case err != nil:
		a.log.Error(ctx, "register", "error", err)
		fmt.Fprintln(a.out, "Registration failed. Try again later.")
		return
	}

	if outcome.AdminDenied {
		fmt.Fprintln(a.out, "Incorrect administrator secret! Registering as a regular user.")
	}
	fmt.Fprintf(a.out, "User %s registered successfully!\n", username)
	a.pause()
}
