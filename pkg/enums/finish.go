package enums

import "fmt"

// Finish identifies the surface treatment of a cabinet. Only the stain grade
// carries a price upcharge.
type Finish string

const (
	FinishPaintGrade Finish = "Paint Grade"
	FinishStainGrade Finish = "Stain Grade"
)

var validFinishes = []Finish{
	FinishPaintGrade,
	FinishStainGrade,
}

// String implements fmt.Stringer.
func (f Finish) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Finish.
func (f Finish) IsValid() bool {
	for _, candidate := range validFinishes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFinish converts raw input into a Finish.
func ParseFinish(value string) (Finish, error) {
	for _, candidate := range validFinishes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid finish %q", value)
}
