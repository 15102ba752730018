package gui

import "fmt"

// FormState tracks the lifecycle of the dialog's form between opening and
// dismissal.
type FormState int

const (
	// StateEditing is the initial state; all input happens here.
	StateEditing FormState = iota
	// StateValidating is entered on a save request and left either back to
	// Editing (on a validation failure) or to Saved.
	StateValidating
	// StateSaved is terminal: the definition was handed to the caller.
	StateSaved
	// StateRejected is terminal: the user cancelled and all input was
	// discarded.
	StateRejected
)

func (s FormState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSaved:
		return "saved"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

// Terminal reports whether the form has finished, successfully or not.
func (s FormState) Terminal() bool {
	return s == StateSaved || s == StateRejected
}

// formMachine performs validated transitions between form states.
type formMachine struct {
	state FormState
}

func (m *formMachine) State() FormState { return m.state }

// To transitions to the requested state, rejecting anything the form's
// lifecycle does not allow.
func (m *formMachine) To(next FormState) error {
	if !allowedTransition(m.state, next) {
		return fmt.Errorf("disallowed form transition: %s -> %s", m.state, next)
	}
	m.state = next
	return nil
}

func allowedTransition(from, to FormState) bool {
	switch from {
	case StateEditing:
		return to == StateValidating || to == StateRejected
	case StateValidating:
		return to == StateEditing || to == StateSaved
	default:
		return false
	}
}
