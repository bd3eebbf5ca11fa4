package cli

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/doeshing/pyrun/internal/ports"
)

// Clipboard implements ports.Clipboard using platform-specific tools.
type Clipboard struct {
	lookPath func(string) (string, error)
}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{lookPath: exec.LookPath}
}

// Enabled reports whether a copy tool exists on this host.
func (c *Clipboard) Enabled() bool {
	_, err := c.command()
	return err == nil
}

// Copy copies text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	argv, err := c.command()
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (c *Clipboard) command() ([]string, error) {
	var candidates [][]string
	switch runtime.GOOS {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		candidates = [][]string{{"clip"}}
	default:
		candidates = [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
	for _, argv := range candidates {
		if _, err := c.lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, fmt.Errorf("clipboard not supported on %s: no copy utility found", runtime.GOOS)
}

var _ ports.Clipboard = (*Clipboard)(nil)
