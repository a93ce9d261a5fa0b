package selector

// EventKind identifies the point in the loop at which an Event was emitted.
type EventKind uint8

const (
	// EventPass is emitted at the end of every pass, after threshold adjustments.
	EventPass EventKind = iota + 1
	// EventTighten is emitted for every threshold step of the over-capacity tightening.
	EventTighten
)

func (k EventKind) String() string {
	switch k {
	case EventPass:
		return "pass"
	case EventTighten:
		return "tighten"
	default:
		return "unknown"
	}
}

// Event is a snapshot of the selection state passed to an observer.
type Event struct {
	Kind EventKind
	// Pass is the 1-based pass number.
	Pass int
	// ThresholdIn is the inclusion threshold at the time of the event.
	ThresholdIn float64
	// Included is a copy of the included set.
	Included Included
	// Done reports that the loop stops after this pass (EventPass only).
	Done bool
	// Dropped reports whether any feature has been removed so far.
	Dropped bool
	// Prefix is the prefix size at ThresholdIn (EventTighten only).
	Prefix int
}
