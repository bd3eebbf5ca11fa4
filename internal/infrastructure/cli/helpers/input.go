package helpers

import (
	"io"
	"strings"
)

// ReadCode returns the snippet from args, or reads stdin when args are
// empty or a single "-".
func ReadCode(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
