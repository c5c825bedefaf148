package todo

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// StatusFilter narrows a search by progress status. StatusAll disables it.
type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusNotStarted StatusFilter = StatusFilter(ProgressNotStarted)
	StatusInProgress StatusFilter = StatusFilter(ProgressInProgress)
	StatusCompleted  StatusFilter = StatusFilter(ProgressCompleted)
)

// IsValid returns true if the filter is one of the defined constants.
func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusAll, StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// DueDateFilter narrows a search by due date. DueAll disables it.
type DueDateFilter string

const (
	DueAll      DueDateFilter = "all"
	DueToday    DueDateFilter = "today"
	DueThisWeek DueDateFilter = "this_week"
	DueOverdue  DueDateFilter = "overdue"
	DueNone     DueDateFilter = "none"
)

// IsValid returns true if the filter is one of the defined constants.
func (d DueDateFilter) IsValid() bool {
	switch d {
	case DueAll, DueToday, DueThisWeek, DueOverdue, DueNone:
		return true
	default:
		return false
	}
}

// Search state query parameter names accepted from clients.
const (
	ParamKeyword = "keyword"
	ParamStatus  = "status"
	ParamDueDate = "dueDate"
)

// Query parameter names sent to the backing API.
const (
	WireKeyword        = "keyword"
	WireProgressStatus = "progress_status"
	WireDueDate        = "due_date"
)

// SearchState is the transient search form. Blank enum values behave like
// "all".
type SearchState struct {
	Keyword string
	Status  StatusFilter
	DueDate DueDateFilter
}

// DefaultSearchState is the cleared search form.
func DefaultSearchState() SearchState {
	return SearchState{Status: StatusAll, DueDate: DueAll}
}

// HasCriteria reports whether s would produce a query.
func (s SearchState) HasCriteria() bool {
	_, ok := NormalizeSearchQuery(s)
	return ok
}

// Query is a normalized search. Zero-valued fields are omitted on the wire.
type Query struct {
	Keyword string
	Status  ProgressStatus
	DueDate DueDateFilter
}

// NormalizeSearchQuery reduces s to the fields that actually filter.
// ok is false when nothing filters; callers then send no query parameters
// at all rather than an empty query.
func NormalizeSearchQuery(s SearchState) (q Query, ok bool) {
	if kw := strings.TrimSpace(s.Keyword); kw != "" {
		q.Keyword = kw
	}
	if s.Status != "" && s.Status != StatusAll {
		q.Status = ProgressStatus(s.Status)
	}
	if s.DueDate != "" && s.DueDate != DueAll {
		q.DueDate = s.DueDate
	}
	return q, q != Query{}
}

// Values renders q as backing API query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Keyword != "" {
		v.Set(WireKeyword, q.Keyword)
	}
	if q.Status != "" {
		v.Set(WireProgressStatus, string(q.Status))
	}
	if q.DueDate != "" {
		v.Set(WireDueDate, string(q.DueDate))
	}
	return v
}

// Key is a stable identity for q, usable as a cache key.
func (q Query) Key() string {
	return q.Values().Encode()
}

// ParseSearchState reads a search form from client query parameters. Unknown
// enum values are reported as invalid_format; the returned state falls back
// to "all" for them.
func ParseSearchState(v url.Values) (SearchState, []domain.FieldError) {
	s := DefaultSearchState()
	s.Keyword = v.Get(ParamKeyword)

	var errs []domain.FieldError
	if raw := v.Get(ParamStatus); raw != "" {
		if f := StatusFilter(raw); f.IsValid() {
			s.Status = f
		} else {
			errs = append(errs, domain.InvalidFormat(ParamStatus))
		}
	}
	if raw := v.Get(ParamDueDate); raw != "" {
		if f := DueDateFilter(raw); f.IsValid() {
			s.DueDate = f
		} else {
			errs = append(errs, domain.InvalidFormat(ParamDueDate))
		}
	}
	return s, errs
}
