package cli

import (
	"context"
	"fmt"
)

// login authenticates the operator and dispatches to the proper menu.
//
// Unknown-user and wrong-password both surface as the same generic message
// so usernames cannot be enumerated from the login screen. A stored admin
// must answer the secret challenge again here; failing it demotes this
// session to user capabilities without rejecting the login.
func (a *App) login(ctx context.Context) {
	a.printBanner("Login")

	username, err := GetSimpleText(a.reader, "Enter your username", a.out)
	if err != nil {
		a.log.Error(ctx, "read username", "error", err)
		return
	}
	password, err := GetPassword("Enter your password", a.out)
	if err != nil {
		a.log.Error(ctx, "read password", "error", err)
		return
	}

	outcome, err := a.session.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, "Error: incorrect username or password. Try again.")
		return
	}
	defer a.session.Logout(ctx)

	if outcome.NeedsElevation {
		attempt, err := GetPassword("Enter the administrator secret to access the admin panel", a.out)
		if err != nil {
			a.log.Error(ctx, "read admin secret", "error", err)
			return
		}
		if !a.session.Elevate(ctx, attempt) {
			fmt.Fprintln(a.out, "Incorrect administrator secret! Continuing as a regular user.")
		}
	}

	fmt.Fprintf(a.out, "Welcome, %s! Login successful.\n", outcome.Username)
	a.showPolicies()

	if a.session.IsAdmin() {
		a.adminMenu(ctx)
	} else {
		a.userMenu(ctx)
	}
}
