/*
Copyright Velocity Network Foundation. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import "fmt"

// State is one step of the exchange lifecycle.
type State string

const (
	StateNew                State = "NEW"
	StateDisclosureReceived State = "DISCLOSURE_RECEIVED"
	StateDisclosureChecked  State = "DISCLOSURE_CHECKED"
	StateComplete           State = "COMPLETE"
	StateIdentified         State = "IDENTIFIED"
	StateNotIdentified      State = "NOT_IDENTIFIED"
	StateUnexpectedError    State = "UNEXPECTED_ERROR"
)

// transitions is the full set of allowed state changes. NOT_IDENTIFIED and
// UNEXPECTED_ERROR are recoverable: the holder may resubmit, so both loop
// back to DISCLOSURE_RECEIVED. COMPLETE and IDENTIFIED are terminal.
var transitions = map[State][]State{
	StateNew: {StateDisclosureReceived},
	StateDisclosureReceived: {
		StateDisclosureChecked,
		StateNotIdentified,
		StateUnexpectedError,
	},
	StateDisclosureChecked: {
		StateComplete,
		StateIdentified,
		StateNotIdentified,
		StateUnexpectedError,
	},
	StateNotIdentified:   {StateDisclosureReceived},
	StateUnexpectedError: {StateDisclosureReceived},
}

// CanTransition reports whether moving from one state to another is allowed.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// ValidateTransition returns a descriptive error for a disallowed move.
func ValidateTransition(from, to State) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("exchange state transition %s -> %s not allowed", from, to)
	}

	return nil
}
