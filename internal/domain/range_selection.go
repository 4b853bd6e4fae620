package domain

import "time"

// SelectionState derived state of a date range selection
type SelectionState string

const (
	SelectionEmpty     SelectionState = "empty"
	SelectionStarted   SelectionState = "started"
	SelectionCompleted SelectionState = "completed"
)

// RangeSelection is an immutable snapshot of a click-to-range selection.
// End is never set while Start is nil.
type RangeSelection struct {
	Start      *time.Time
	End        *time.Time
	LowerBound *time.Time // dates strictly before it are ignored
}

// State returns the state derived from the endpoints
func (s RangeSelection) State() SelectionState {
	switch {
	case s.Start == nil:
		return SelectionEmpty
	case s.End == nil:
		return SelectionStarted
	default:
		return SelectionCompleted
	}
}

// IsComplete returns true if both endpoints are set
func (s RangeSelection) IsComplete() bool {
	return s.State() == SelectionCompleted
}

// Days returns the number of calendar days covered by a completed selection (inclusive)
func (s RangeSelection) Days() int {
	if !s.IsComplete() {
		return 0
	}
	return DaysBetween(*s.Start, *s.End) + 1
}

// Transition applies one day activation and returns the next selection.
// Activations before LowerBound leave the selection unchanged.
func Transition(s RangeSelection, date time.Time) RangeSelection {
	if s.LowerBound != nil && date.Before(*s.LowerBound) {
		return s
	}

	next := RangeSelection{LowerBound: s.LowerBound}

	switch s.State() {
	case SelectionStarted:
		if !date.Before(*s.Start) {
			next.Start = s.Start
			next.End = timePtr(date)
			return next
		}
		// Клик раньше начала переносит якорь
		next.Start = timePtr(date)
	default:
		// Empty и Completed: начинаем новый выбор
		next.Start = timePtr(date)
	}

	return next
}

// RangeSelector owns a RangeSelection and applies day activations to it.
// It is not safe for concurrent use.
type RangeSelector struct {
	sel RangeSelection
}

// NewRangeSelector creates an empty selector; lowerBound may be nil
func NewRangeSelector(lowerBound *time.Time) *RangeSelector {
	return &RangeSelector{sel: RangeSelection{LowerBound: copyTime(lowerBound)}}
}

// Activate feeds a picked day into the selector
func (r *RangeSelector) Activate(date time.Time) {
	r.sel = Transition(r.sel, date)
}

// SetStart overrides the start endpoint without validation
func (r *RangeSelector) SetStart(date *time.Time) {
	r.sel.Start = copyTime(date)
}

// SetEnd overrides the end endpoint without validation
func (r *RangeSelector) SetEnd(date *time.Time) {
	r.sel.End = copyTime(date)
}

// Clear resets both endpoints
func (r *RangeSelector) Clear() {
	r.SetStart(nil)
	r.SetEnd(nil)
}

func (r *RangeSelector) Start() *time.Time {
	return copyTime(r.sel.Start)
}

func (r *RangeSelector) End() *time.Time {
	return copyTime(r.sel.End)
}

func (r *RangeSelector) LowerBound() *time.Time {
	return copyTime(r.sel.LowerBound)
}

func (r *RangeSelector) State() SelectionState {
	return r.sel.State()
}

// Snapshot returns a copy of the current selection
func (r *RangeSelector) Snapshot() RangeSelection {
	return RangeSelection{
		Start:      copyTime(r.sel.Start),
		End:        copyTime(r.sel.End),
		LowerBound: copyTime(r.sel.LowerBound),
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
