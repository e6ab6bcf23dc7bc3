package discussion

import "fmt"

type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

var SupportedStates = []string{StateOpen.String(), StateClosed.String()}

// allowedTransitions enumerates every valid state change. A state
// can always stay where it is; anything not listed is rejected.
var allowedTransitions = map[State][]State{
	StateOpen:   {StateOpen, StateClosed},
	StateClosed: {StateClosed, StateOpen},
}

// String returns state enum as string
func (st State) String() string {
	return string(st)
}

// GetStateEnum converts string to state enum
func GetStateEnum(st string) State {
	switch st {
	case StateOpen.String():
		return StateOpen
	case StateClosed.String():
		return StateClosed
	}
	// fallback
	return StateOpen
}

// IsStateStringValid returns true if state string is valid/supported
func IsStateStringValid(st string) bool {
	for _, supported := range SupportedStates {
		if supported == st {
			return true
		}
	}
	return false
}

// CanTransitionTo returns nil if moving from the current state to the
// target state is allowed, InvalidStateTransitionError otherwise.
func (st State) CanTransitionTo(target State) error {
	for _, allowed := range allowedTransitions[st] {
		if allowed == target {
			return nil
		}
	}
	return InvalidStateTransitionError{From: st, To: target}
}

// InvalidStateTransitionError is returned when a discussion state
// change is not part of the allowed transition table.
type InvalidStateTransitionError struct {
	From State
	To   State
}

func (e InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("cannot transition discussion state from %q to %q", e.From, e.To)
}
