package model

// InterestKind tells the scanner whether, and for how long, a listener wants
// to hear about the entries of a source.
type InterestKind int

const (
	// InterestNone means the listener does not care. It is never stored.
	InterestNone InterestKind = iota
	// InterestOnce subscribes for the next completed scan round only.
	InterestOnce
	// InterestRepeat subscribes for every scan of the source.
	InterestRepeat
)

func (k InterestKind) String() string {
	switch k {
	case InterestNone:
		return "none"
	case InterestOnce:
		return "once"
	case InterestRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// ScanAction brackets a scan round.
type ScanAction int

const (
	// ScanStarting is sent before any interest check or delivery.
	ScanStarting ScanAction = iota
	// ScanComplete is sent after a round finished without a fault.
	ScanComplete
)

func (a ScanAction) String() string {
	if a == ScanStarting {
		return "starting"
	}

	return "complete"
}
