package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalSize is a test seam; it reports the terminal dimensions with an
// 80×24 fallback when stdout is not a terminal.
var terminalSize = func() (columns, lines int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// center pads s on both sides to width columns, so nested centering (a
// fixed-width frame inside the terminal) lines up. Strings already wider
// than width are returned unchanged.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func (a *App) clearScreen() {
	// ANSI clear + home; good enough for the terminals we target.
	fmt.Fprint(a.out, "\x1b[2J\x1b[H")
}

// printBanner clears the screen and renders title inside a 50-column frame,
// centered both horizontally and vertically.
func (a *App) printBanner(title string) {
	a.clearScreen()
	columns, lines := terminalSize()

	bannerLines := []string{
		"",
		strings.Repeat("=", 50),
		center(title, 50),
		strings.Repeat("=", 50),
	}

	if empty := (lines - len(bannerLines)) / 2; empty > 0 {
		fmt.Fprint(a.out, strings.Repeat("\n", empty))
	}
	for _, line := range bannerLines {
		fmt.Fprintln(a.out, center(line, columns))
	}
}

// printCentered writes one line centered on the current terminal width.
func (a *App) printCentered(s string) {
	columns, _ := terminalSize()
	fmt.Fprintln(a.out, center(s, columns))
}
