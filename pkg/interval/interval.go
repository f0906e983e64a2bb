package interval

import "fmt"

// Closure selects which ends of a (min, max) bound are inclusive.
type Closure string

const (
	// Left is the half-open interval [min, max).
	Left Closure = "left"

	// Right is the half-open interval (min, max].
	Right Closure = "right"

	// Both is the closed interval [min, max].
	Both Closure = "both"

	// Open is the open interval (min, max).
	Open Closure = "none"
)

// IsValid reports whether the closure is one of the known values.
func (c Closure) IsValid() bool {
	switch c {
	case Left, Right, Both, Open:
		return true
	}
	return false
}

// String returns the conventional bracket notation for the closure.
func (c Closure) String() string {
	switch c {
	case Left:
		return "[min, max)"
	case Right:
		return "(min, max]"
	case Both:
		return "[min, max]"
	case Open:
		return "(min, max)"
	}
	return fmt.Sprintf("unknown closure %q", string(c))
}

// Contains reports whether v lies within the (min, max) bound under the
// given closure.
func Contains(v, min, max float64, c Closure) bool {
	switch c {
	case Left:
		return v >= min && v < max
	case Right:
		return v > min && v <= max
	case Both:
		return v >= min && v <= max
	case Open:
		return v > min && v < max
	}
	return false
}

// ContainsAll reports whether every value in the column lies within the
// (min, max) bound under the given closure. An empty column is vacuously
// contained.
func ContainsAll(values []float64, min, max float64, c Closure) bool {
	for _, v := range values {
		if !Contains(v, min, max, c) {
			return false
		}
	}
	return true
}
