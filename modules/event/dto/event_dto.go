package dto

// RepairReport summarizes one batch repair run. Unrepaired counts the
// expected no-eligible-host outcomes; Failures lists events skipped because
// of store or matcher errors, which are not the same thing.
type RepairReport struct {
	RepairedCount   int      `json:"repaired_count"`
	UnrepairedCount int      `json:"unrepaired_count"`
	Notes           []string `json:"notes"`
	Failures        []string `json:"failures,omitempty"`
}

// RepairWeekRequest triggers repair of one week of a container's events
type RepairWeekRequest struct {
	Year        int  `json:"year"`
	Month       int  `json:"month"`
	WeekOfMonth int  `json:"week_of_month"`
	Async       bool `json:"async"`
}

// RepairWeekQueuedResponse acknowledges an enqueued background repair
type RepairWeekQueuedResponse struct {
	TaskID string `json:"task_id"`
	Queued bool   `json:"queued"`
}
