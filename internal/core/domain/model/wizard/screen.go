package wizard

import (
	"errors"
	"fmt"

	"pickup/internal/pkg/errs"
)

// ErrActionNotAllowed is returned for any action the current screen does not
// offer. The wizard is left untouched.
var ErrActionNotAllowed = errors.New("action is not allowed on the current screen")

// Screen is the step of the wizard being shown. Exactly one screen is active.
//
// Transitions:
//
//	Calculator <──> Location <──> Scheduling <──> Observations ──> Success
//	     ^                                                            │
//	     └──────────────────────── restart ───────────────────────────┘
type Screen int

const (
	// Unknown is the zero value and never a valid screen.
	Unknown Screen = iota
	// Calculator is where carpets are measured and the estimate is shown.
	Calculator
	// Location collects contact details and the pickup address.
	Location
	// Scheduling is the pickup date picker.
	Scheduling
	// Observations collects free-form notes and the anti-automation answer.
	Observations
	// Success confirms the order. It is left only by restarting.
	Success
)

func getScreenStrings() map[Screen]string {
	return map[Screen]string{
		Unknown:      "Unknown",
		Calculator:   "Calculator",
		Location:     "Location",
		Scheduling:   "Scheduling",
		Observations: "Observations",
		Success:      "Success",
	}
}

// Validate reports whether s is one of the five real screens.
func (s Screen) Validate() error {
	if s < Calculator || s > Success {
		return errs.NewValueIsInvalidErrorWithCause("screen", fmt.Errorf("%d is not a valid screen", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values print as "Unknown".
func (s Screen) String() string {
	if str, ok := getScreenStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the screen that follows s. Success has no successor.
func (s Screen) Next() (Screen, error) {
	switch s {
	case Calculator, Location, Scheduling, Observations:
		return s + 1, nil
	default:
		return s, fmt.Errorf("%w: no screen after %s", ErrActionNotAllowed, s)
	}
}

// Back returns the screen before s. Only the three middle screens can go back.
func (s Screen) Back() (Screen, error) {
	switch s {
	case Location, Scheduling, Observations:
		return s - 1, nil
	default:
		return s, fmt.Errorf("%w: cannot go back from %s", ErrActionNotAllowed, s)
	}
}

// Step is the 1-based position of s in the wizard, 0 for Unknown.
func (s Screen) Step() int {
	if s.Validate() != nil {
		return 0
	}
	return int(s)
}
