package state

// Lifecycle is where a scene sits in its activation cycle
type Lifecycle int

const (
	Inactive Lifecycle = iota
	Running
	Invalid
)

// String returns the string representation of the lifecycle state
func (s Lifecycle) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Running:
		return "Running"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Of derives the state from whether the scene is active and still valid
func Of(active, valid bool) Lifecycle {
	switch {
	case !active:
		return Inactive
	case valid:
		return Running
	default:
		return Invalid
	}
}
