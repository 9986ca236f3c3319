package editor

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrNoBitmap     = errors.New("bitmap must be created first. Use the `?` command for help")
	ErrBadDimension = errors.New("bitmap dimension must be between (1,1) and (250,250)")
)

// Message formats an error as the single line shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
