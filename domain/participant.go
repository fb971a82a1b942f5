// Package domain contains core concepts of the turn-based chat.
// This file defines Participant identities and their fixed pairing.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"strings"
)

// Participant is one of the two fixed department roles of a session.
// It is assigned at connection time and never changes.
type Participant string

const (
	DeptRH Participant = "RH"
	DeptTI Participant = "TI"
)

// Other returns the counterpart department.
func (p Participant) Other() Participant {
	if p == DeptRH {
		return DeptTI
	}
	return DeptRH
}

func (p Participant) String() string {
	return string(p)
}

// ParseParticipant reads a department identity from configuration input.
func ParseParticipant(s string) (Participant, error) {
	switch Participant(strings.ToUpper(strings.TrimSpace(s))) {
	case DeptRH:
		return DeptRH, nil
	case DeptTI:
		return DeptTI, nil
	}
	return "", fmt.Errorf("unknown participant %q", s)
}
