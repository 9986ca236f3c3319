package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-bitmap/internal/bitmap"
)

// slotCount is the number of argument slots after the tag:
// three numeric slots followed by one alphabetic slot.
const slotCount = 4

// slots holds the argument tokens; an empty string is an empty slot.
// nums carries the parsed values of the numeric slots.
type slots struct {
	raw  [slotCount]string
	nums [slotCount - 1]int
}

// shape describes which slots a command type requires and forbids.
type shape struct {
	required  []int
	forbidden []int
}

var shapes = map[Type]shape{
	TypeCreate:     {required: []int{1, 2}, forbidden: []int{3, 4}},
	TypeClear:      {forbidden: []int{1, 2, 3, 4}},
	TypeColour:     {required: []int{1, 2, 4}, forbidden: []int{3}},
	TypeFill:       {required: []int{1, 2, 4}, forbidden: []int{3}},
	TypeVertical:   {required: []int{1, 2, 3, 4}},
	TypeHorizontal: {required: []int{1, 2, 3, 4}},
	TypeShow:       {forbidden: []int{1, 2, 3, 4}},
	TypeHelp:       {forbidden: []int{1, 2, 3, 4}},
	TypeExit:       {forbidden: []int{1, 2, 3, 4}},
}

// Parse turns one line of text into a Command.
//
// The line is split on whitespace: a one-character tag (A-Z or '?'),
// up to three unsigned integers and an optional run of uppercase letters,
// in that order. Lines that do not fit that shape fail with
// ErrInvalidFormat; unrecognised tags fail with ErrInvalidCommand; slots
// that do not match the tag's shape fail with ErrInvalidFormat.
func Parse(line string) (Command, error) {
	tag, args, err := tokenize(line)
	if err != nil {
		return Command{}, err
	}

	t := Type(tag)
	if !t.Known() {
		return Command{}, invalidCommand(t.Tag())
	}

	if err := shapes[t].check(args); err != nil {
		return Command{}, err
	}

	return assign(t, args), nil
}

// tokenize performs the shape stage.
func tokenize(line string) (byte, slots, error) {
	var args slots

	fields := strings.Fields(line)
	if len(fields) == 0 || !isTag(fields[0]) {
		return 0, args, fmt.Errorf("%w: %q", ErrInvalidFormat, line)
	}

	numeric := 0
	for i, field := range fields[1:] {
		switch {
		case isDigits(field) && numeric < len(args.nums):
			n, err := strconv.Atoi(field)
			if err != nil {
				return 0, args, fmt.Errorf("%w: %q is not a valid number", ErrInvalidFormat, field)
			}
			args.raw[numeric] = field
			args.nums[numeric] = n
			numeric++
		case isUpper(field) && i == len(fields)-2:
			args.raw[slotCount-1] = field
		default:
			return 0, args, fmt.Errorf("%w: %q", ErrInvalidFormat, line)
		}
	}

	return fields[0][0], args, nil
}

// check verifies slot presence for a command type. Slots are 1-based.
func (s shape) check(args slots) error {
	for _, i := range s.required {
		if args.raw[i-1] == "" {
			return fmt.Errorf("%w: missing argument %d", ErrInvalidFormat, i)
		}
	}
	for _, i := range s.forbidden {
		if args.raw[i-1] != "" {
			return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFormat, args.raw[i-1])
		}
	}
	return nil
}

// assign fills the Command fields used by t.
func assign(t Type, args slots) Command {
	nums := args.nums
	colour := args.raw[slotCount-1]

	cmd := Command{Type: t}
	switch t {
	case TypeCreate:
		cmd.X, cmd.Y = nums[0], nums[1]
	case TypeColour, TypeFill:
		cmd.X, cmd.Y = nums[0], nums[1]
		cmd.Colour = colour
	case TypeVertical:
		cmd.X = nums[0]
		cmd.YRange = bitmap.R(nums[1], nums[2])
		cmd.Colour = colour
	case TypeHorizontal:
		cmd.XRange = bitmap.R(nums[0], nums[1])
		cmd.Y = nums[2]
		cmd.Colour = colour
	}
	return cmd
}

func isTag(s string) bool {
	return len(s) == 1 && (s[0] == '?' || (s[0] >= 'A' && s[0] <= 'Z'))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isUpper(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
