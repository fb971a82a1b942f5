package domain

// SessionState is the lifecycle of a two-party session.
type SessionState int

const (
	WaitingForBoth SessionState = iota
	Active
	ADone
	BDone
	Closed
)

func (s SessionState) String() string {
	switch s {
	case WaitingForBoth:
		return "WAITING_FOR_BOTH"
	case Active:
		return "ACTIVE"
	case ADone:
		return "A_DONE"
	case BDone:
		return "B_DONE"
	case Closed:
		return "CLOSED"
	}
	return "UNKNOWN"
}

// Terminal reports whether no further transitions are possible.
func (s SessionState) Terminal() bool {
	return s == Closed
}
