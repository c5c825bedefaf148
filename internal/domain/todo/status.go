package todo

// ProgressStatus represents where a Todo sits on the board.
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// IsValid returns true if the status is one of the defined constants.
func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted:
		return true
	default:
		return false
	}
}

// Toggled flips completion: completed goes back to not_started, anything
// else becomes completed.
func (s ProgressStatus) Toggled() ProgressStatus {
	if s == ProgressCompleted {
		return ProgressNotStarted
	}
	return ProgressCompleted
}

// String implements fmt.Stringer.
func (s ProgressStatus) String() string {
	return string(s)
}

// RecurrenceType says how often a Todo repeats.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// IsValid returns true if the recurrence is one of the defined constants.
func (r RecurrenceType) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// Recurs reports whether r repeats. The empty value means none.
func (r RecurrenceType) Recurs() bool {
	return r != "" && r != RecurrenceNone
}

// String implements fmt.Stringer.
func (r RecurrenceType) String() string {
	return string(r)
}
