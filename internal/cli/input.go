package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// ErrNotANumber marks input that was read fine but did not parse as a whole
// number. Callers use it to tell a re-promptable answer apart from a broken
// reader.
var ErrNotANumber = errors.New("not a whole number")

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetInt reads a line and parses it as an integer. Parse failures are
// returned wrapping ErrNotANumber; re-prompting is the caller's loop.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	raw, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return n, nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetYesNo keeps prompting until the operator answers "yes" or "no"
// (case-insensitive, "y"/"n" accepted).
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	for {
		raw, err := GetSimpleText(reader, prompt+" (yes/no)", w)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(w, "Invalid option! Type 'yes' or 'no'.")
	}
}
