package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniaodigital/learnhub/internal/logging"
)

func withTerminalSize(t *testing.T, columns, lines int) {
	t.Helper()
	old := terminalSize
	t.Cleanup(func() { terminalSize = old })
	terminalSize = func() (int, int) { return columns, lines }
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", center("ab", 6))
	assert.Equal(t, "  ab   ", center("ab", 7))
	assert.Equal(t, "abcdef", center("abcdef", 4))
	assert.Equal(t, "    ", center("", 4))
}

func TestPrintBanner_FrameIsCentered(t *testing.T) {
	withTerminalSize(t, 60, 10)

	var out bytes.Buffer
	a := &App{out: &out, log: logging.NewDiscardLogger()}

	a.printBanner("Login")

	lines := strings.Split(out.String(), "\n")
	var frame []string
	for _, line := range lines {
		if strings.Contains(line, "=") || strings.Contains(line, "Login") {
			frame = append(frame, line)
		}
	}
	// Two rule lines around the centered title.
	assert.Len(t, frame, 3)
	assert.Contains(t, frame[0], strings.Repeat("=", 50))
	assert.Contains(t, frame[1], "Login")
	// The 50-wide frame sits 5 columns in on a 60-column terminal.
	assert.True(t, strings.HasPrefix(frame[0], strings.Repeat(" ", 5)+"="))
}
