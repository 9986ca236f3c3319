// Package command parses single-line editor instructions into typed,
// shape-checked commands. Range and bound checks against an actual grid
// are left to the caller.
package command

import (
	"fmt"

	"github.com/vovakirdan/tui-bitmap/internal/bitmap"
)

// Type identifies an instruction by its single-character tag.
type Type byte

const (
	TypeCreate     Type = 'I'
	TypeClear      Type = 'C'
	TypeColour     Type = 'L'
	TypeVertical   Type = 'V'
	TypeHorizontal Type = 'H'
	TypeShow       Type = 'S'
	TypeHelp       Type = '?'
	TypeExit       Type = 'X'
	TypeFill       Type = 'F'
)

// types lists every recognised tag in help order.
var types = []Type{
	TypeCreate,
	TypeClear,
	TypeColour,
	TypeVertical,
	TypeHorizontal,
	TypeShow,
	TypeHelp,
	TypeExit,
	TypeFill,
}

// Types returns all recognised command types.
func Types() []Type {
	return append([]Type(nil), types...)
}

// Tag returns the single-character form of the type.
func (t Type) Tag() string {
	return string(rune(t))
}

// String returns a human-readable name for the type.
func (t Type) String() string {
	switch t {
	case TypeCreate:
		return "create"
	case TypeClear:
		return "clear"
	case TypeColour:
		return "colour"
	case TypeVertical:
		return "vertical"
	case TypeHorizontal:
		return "horizontal"
	case TypeShow:
		return "show"
	case TypeHelp:
		return "help"
	case TypeExit:
		return "exit"
	case TypeFill:
		return "fill"
	default:
		return "unknown"
	}
}

// Known reports whether t is a recognised command type.
func (t Type) Known() bool {
	for _, known := range types {
		if t == known {
			return true
		}
	}
	return false
}

// Command is a parsed instruction. Only the fields used by Type are set;
// the rest keep their zero values.
type Command struct {
	Type   Type
	X      int
	Y      int
	XRange bitmap.Range
	YRange bitmap.Range
	Colour string
}

// String returns the canonical text form of the command.
func (c Command) String() string {
	switch c.Type {
	case TypeCreate:
		return fmt.Sprintf("%s %d %d", c.Type.Tag(), c.X, c.Y)
	case TypeColour, TypeFill:
		return fmt.Sprintf("%s %d %d %s", c.Type.Tag(), c.X, c.Y, c.Colour)
	case TypeVertical:
		return fmt.Sprintf("%s %d %d %d %s", c.Type.Tag(), c.X, c.YRange.Start, c.YRange.End, c.Colour)
	case TypeHorizontal:
		return fmt.Sprintf("%s %d %d %d %s", c.Type.Tag(), c.XRange.Start, c.XRange.End, c.Y, c.Colour)
	default:
		return c.Type.Tag()
	}
}
