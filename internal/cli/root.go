package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run starts the anonymous main menu and blocks until the operator exits.
func (a *App) Run(ctx context.Context) {
	for {
		a.printBanner("Welcome to União Digital")
		a.printCentered("1. Register")
		a.printCentered("2. Login")
		a.printCentered("3. Recover password")
		a.printCentered("4. Exit")

		choice, err := GetSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.log.Error(ctx, "read menu choice", "error", err)
			}
			return
		}

		switch choice {
		case "1":
			a.register(ctx)
		case "2":
			a.login(ctx)
		case "3":
			a.resetPassword(ctx)
		case "4":
			a.printCentered("Thank you for using the platform. Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option! Try again.")
		}
	}
}
