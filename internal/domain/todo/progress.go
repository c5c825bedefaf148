package todo

// Progress counts todos per progress status.
type Progress struct {
	Total      int
	NotStarted int
	InProgress int
	Completed  int
}

// Percent returns the completed share as a whole percentage, truncated.
// Returns 0 when there are no todos.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

// Summarize counts todos by progress status. Todos with an unknown status
// are included in Total only.
func Summarize(todos []Todo) Progress {
	p := Progress{Total: len(todos)}
	for i := range todos {
		switch todos[i].ProgressStatus {
		case ProgressNotStarted:
			p.NotStarted++
		case ProgressInProgress:
			p.InProgress++
		case ProgressCompleted:
			p.Completed++
		}
	}
	return p
}
