package task

// Counters of a single priority group.
type GroupStats struct {
	Enqueued, Rejected, Started, Completed, Dropped int64
}

// A snapshot of the scheduler counters.
type Stats struct {
	Groups map[int]GroupStats

	// Tasks rejected because no group could be created for them
	RejectedGroups int64

	// Tasks currently executing
	InService int64
}

// Returns a snapshot of the counters.
func (ts *TaskScheduler) Stats() Stats {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	s := Stats{
		Groups:         make(map[int]GroupStats, len(ts.groups)),
		RejectedGroups: ts.rejectedGroups,
		InService:      ts.inService,
	}
	for id, group := range ts.groups {
		s.Groups[id] = group.stats
	}
	return s
}
