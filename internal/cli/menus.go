package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) userMenu(ctx context.Context) {
	for {
		a.printBanner("Main Menu")
		a.printCentered("1. Choose a course")
		a.printCentered("2. View quiz statistics")
		a.printCentered("3. Exit")

		choice, err := GetSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			a.log.Error(ctx, "read menu choice", "error", err)
			return
		}

		switch choice {
		case "1":
			a.coursesMenu(ctx)
		case "2":
			a.showMyStatistics(ctx)
		case "3":
			a.printCentered("Thank you for using the platform. Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option! Try again.")
		}
	}
}

func (a *App) adminMenu(ctx context.Context) {
	for {
		a.printBanner("Main Menu (Administrator)")
		a.printCentered("1. Choose a course")
		a.printCentered("2. Quiz statistics (all users)")
		a.printCentered("3. Registered users")
		a.printCentered("4. Location census")
		a.printCentered("5. Exit")

		choice, err := GetSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			a.log.Error(ctx, "read menu choice", "error", err)
			return
		}

		switch choice {
		case "1":
			a.coursesMenu(ctx)
		case "2":
			a.showAllStatistics(ctx)
		case "3":
			a.showAllUsers(ctx)
		case "4":
			a.showLocations(ctx)
		case "5":
			a.printCentered("Thank you for using the platform. Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option! Try again.")
		}
	}
}

func (a *App) coursesMenu(ctx context.Context) {
	for {
		a.printBanner("Available Courses")
		for i, course := range a.courses {
			a.printCentered(fmt.Sprintf("%d. %s", i+1, course.Title))
		}
		back := len(a.courses) + 1
		a.printCentered(fmt.Sprintf("%d. Back to main menu", back))

		choice, err := GetSimpleText(a.reader, "Choose a course", a.out)
		if err != nil {
			a.log.Error(ctx, "read course choice", "error", err)
			return
		}

		n, convErr := strconv.Atoi(choice)
		switch {
		case convErr == nil && n == back:
			a.printCentered("Returning to the main menu...")
			return
		case convErr == nil && n >= 1 && n <= len(a.courses):
			a.runQuiz(ctx, a.courses[n-1])
		default:
			a.printCentered("Invalid option! Try again.")
		}
	}
}

func (a *App) showMyStatistics(ctx context.Context) {
	entries, err := a.session.MyStatistics(ctx)
	if err != nil {
		a.log.Error(ctx, "load statistics", "error", err)
		return
	}

	if len(entries) == 0 {
		a.printCentered("No statistics available for this user yet.")
		a.pause()
		return
	}

	a.printBanner(fmt.Sprintf("Quiz Statistics for %s", a.session.Username()))
	for quizID, entry := range entries {
		a.printCentered(fmt.Sprintf("%s:", quizID))
		a.printCentered(fmt.Sprintf("  - Average time: %.2f seconds", entry.AverageTimeSeconds))
		a.printCentered(fmt.Sprintf("  - Attempts: %d", entry.Attempts))
		a.printCentered(fmt.Sprintf("  - Correct answers: %d", entry.CorrectAnswers))
	}
	a.pause()
}

func (a *App) showAllStatistics(ctx context.Context) {
	doc, err := a.session.AllStatistics(ctx)
	if err != nil {
		a.log.Error(ctx, "load all statistics", "error", err)
		return
	}

	a.printBanner("Quiz Statistics (All Users)")
	if len(doc) == 0 {
		a.printCentered("No quiz statistics available.")
	}
	for username, quizzes := range doc {
		a.printCentered(fmt.Sprintf("User: %s", username))
		for quizID, entry := range quizzes {
			a.printCentered(fmt.Sprintf("  %s:", quizID))
			a.printCentered(fmt.Sprintf("    - Average time: %.2f seconds", entry.AverageTimeSeconds))
			a.printCentered(fmt.Sprintf("    - Attempts: %d", entry.Attempts))
			a.printCentered(fmt.Sprintf("    - Correct answers: %d", entry.CorrectAnswers))
		}
		fmt.Fprintln(a.out, strings.Repeat("-", 40))
	}
	a.pause()
}

func (a *App) showAllUsers(ctx context.Context) {
	records, err := a.session.AllUsers(ctx)
	if err != nil {
		a.log.Error(ctx, "load users", "error", err)
		return
	}

	a.printBanner("Registered Users")
	if len(records) == 0 {
		a.printCentered("No users registered.")
	}
	for _, u := range records {
		a.printCentered(fmt.Sprintf("User: %s", u.Username))
		a.printCentered(fmt.Sprintf("  Age: %d", u.Age))
		a.printCentered(fmt.Sprintf("  Location: %s", u.Location))
		a.printCentered(fmt.Sprintf("  Role: %s", u.Role))
		fmt.Fprintln(a.out, strings.Repeat("-", 40))
	}
	a.pause()
}

func (a *App) showLocations(ctx context.Context) {
	doc, err := a.session.LocationCensus(ctx)
	if err != nil {
		a.log.Error(ctx, "load census", "error", err)
		return
	}

	a.printBanner("Location Census")
	if len(doc) == 0 {
		a.printCentered("No locations registered.")
	}
	for location, count := range doc {
		a.printCentered(fmt.Sprintf("%s: %d user(s)", location, count))
	}
	a.pause()
}
