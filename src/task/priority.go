package task

type Priority int

const (
	HighPriority Priority = iota
	LowPriority

	PriorityLevelCount = 2
)

// Returns the scheduler weight of a priority level.
func Weight(priority Priority) float32 {
	switch priority {
	case HighPriority:
		return 10.0
	case LowPriority:
		return 1.0
	default:
		panic("invalid priority group")
	}
}
