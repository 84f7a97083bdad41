package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	assert.Contains(t, out.String(), "Name?")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"positive", "42\n", 42, false},
		{"negative", "-3\n", -3, false},
		{"whitespace trimmed", "  7 \n", 7, false},
		{"not a number", "seven\n", 0, true},
		{"float rejected", "4.2\n", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetInt(rdr(tc.input), "Age?", &out)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetInt_ReadErrorIsNotANumberError(t *testing.T) {
	var out bytes.Buffer
	_, err := GetInt(rdr(""), "Age?", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotANumber)
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer

	got, err := GetYesNo(rdr("yes\n"), "Admin?", &out)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = GetYesNo(rdr("N\n"), "Admin?", &out)
	require.NoError(t, err)
	assert.False(t, got)

	// Keeps prompting until a valid answer arrives.
	out.Reset()
	got, err = GetYesNo(rdr("maybe\nYES\n"), "Admin?", &out)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, out.String(), "Invalid option!")
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword("Enter password", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_Stubbed(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("S3cret!pw"), nil
	}

	var out bytes.Buffer
	got, err := GetPassword("Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, "S3cret!pw", got)
	assert.Contains(t, out.String(), "Enter password: ")
}
