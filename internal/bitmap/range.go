package bitmap

import "fmt"

// Range is an inclusive, ascending pair of 1-based bounds along one axis.
// A zero End (or Start) means that end is missing.
type Range struct {
	Start int
	End   int
}

// R is a convenience constructor for Range.
func R(start, end int) Range {
	return Range{Start: start, End: end}
}

// IsZero reports whether neither end is set.
func (r Range) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// String returns the range as "start..end".
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// validate checks that both ends are present, the range is strictly
// ascending and it lies within [1, max].
func (r Range) validate(max int) error {
	present := r.Start != 0 && r.End != 0
	if !present || r.Start >= r.End || r.Start < 1 || r.End > max {
		return fmt.Errorf("%w: provided range should be between 1 and %d in ascending order, got %s",
			ErrInvalidRange, max, r)
	}
	return nil
}
