package queries

import (
	"fmt"
	"strings"
	"time"
)

// State is the named temporal/status filter applied to booking lists.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var supportedStates = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

type UnknownStateError struct {
	Value string
}

func (e *UnknownStateError) Error() string {
	names := make([]string, len(supportedStates))
	for i, s := range supportedStates {
		names[i] = string(s)
	}
	return fmt.Sprintf("unknown state %s. Supported values: %s", e.Value, strings.Join(names, ", "))
}

// ParseState is case-insensitive; anything outside the supported set is a
// business validation error naming the valid values.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	state := State(strings.ToUpper(s))
	for _, known := range supportedStates {
		if state == known {
			return state, nil
		}
	}
	return "", &UnknownStateError{Value: s}
}

// BookingFilter is handed to the read store, which turns it into WHERE
// clauses. Now is captured once per call so both CURRENT bounds use the
// same instant.
type BookingFilter struct {
	State State
	Now   time.Time
	Page  Page
}
