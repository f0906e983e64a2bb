package status

import "fmt"

// Outcome is the tri-state result of a single validation check.
type Outcome string

const (
	// OutcomePass indicates the check succeeded.
	OutcomePass Outcome = "pass"

	// OutcomeWarning indicates the check found something suspicious but not
	// a hard violation. A warning still counts as "not pass" for validity.
	OutcomeWarning Outcome = "warning"

	// OutcomeFail indicates the check found a hard violation.
	OutcomeFail Outcome = "fail"
)

// IsValid reports whether the outcome is one of the known tri-state values.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomePass, OutcomeWarning, OutcomeFail:
		return true
	}
	return false
}

// String returns the outcome as a string.
func (o Outcome) String() string {
	return string(o)
}

// Status couples an Outcome with an optional explanatory message. It is an
// immutable value created by each check and never mutated afterwards.
type Status struct {
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// Pass returns a passing status with no message.
func Pass() Status {
	return Status{Outcome: OutcomePass}
}

// Passf returns a passing status with a formatted message.
func Passf(format string, args ...any) Status {
	return Status{Outcome: OutcomePass, Message: fmt.Sprintf(format, args...)}
}

// Warnf returns a warning status with a formatted message.
func Warnf(format string, args ...any) Status {
	return Status{Outcome: OutcomeWarning, Message: fmt.Sprintf(format, args...)}
}

// Failf returns a failing status with a formatted message.
func Failf(format string, args ...any) Status {
	return Status{Outcome: OutcomeFail, Message: fmt.Sprintf(format, args...)}
}

// IsPass reports whether the status outcome is Pass.
func (s Status) IsPass() bool {
	return s.Outcome == OutcomePass
}

// AllPass reports whether every status outcome equals Pass. Warnings and
// failures both count as not-all-pass.
func AllPass(statuses ...Status) bool {
	for _, s := range statuses {
		if s.Outcome != OutcomePass {
			return false
		}
	}
	return true
}
