package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterConfirm(t *testing.T) {
	tests := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"yes":   true,
		"":      false,
	}
	for input, want := range tests {
		var out bytes.Buffer
		got, err := NewPrompter(strings.NewReader(input), &out).Confirm("Clear all history?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
		assert.Contains(t, out.String(), "Clear all history? [y/N]")
	}
}

func TestClipboardWithoutTools(t *testing.T) {
	c := &Clipboard{lookPath: func(string) (string, error) { return "", errors.New("missing") }}
	assert.False(t, c.Enabled())
	assert.ErrorContains(t, c.Copy("x"), "no copy utility")
}

func TestClipboardPicksFirstAvailableTool(t *testing.T) {
	c := &Clipboard{lookPath: func(name string) (string, error) { return "/usr/bin/" + name, nil }}
	assert.True(t, c.Enabled())
	argv, err := c.command()
	require.NoError(t, err)
	assert.NotEmpty(t, argv)
}
