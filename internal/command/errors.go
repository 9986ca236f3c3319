package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFormat  = errors.New("invalid format for the command, ? for help")
	ErrInvalidCommand = errors.New("invalid command")
)

// invalidCommand wraps ErrInvalidCommand with the list of accepted tags.
func invalidCommand(tag string) error {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Tag())
	}
	return fmt.Errorf("%w %q, possible commands are: %s", ErrInvalidCommand, tag, strings.Join(names, ", "))
}
