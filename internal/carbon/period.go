package carbon

import "time"

// Window is a calendar-date range, serialized "2006-01-02" to line up with
// the date-only trips column. Comparing the strings lexicographically is
// equivalent to comparing the dates. An empty End means the window is open
// upward, so "today's" trips are always inside the current-month window
// without having to pin down "now" twice.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Contains reports whether a date string falls inside the window. The end
// bound is inclusive. An empty date is never inside any window.
func (w Window) Contains(date string) bool {
	if date == "" || date < w.Start {
		return false
	}
	return w.End == "" || date <= w.End
}

// CurrentMonthWindow returns the window for the month containing ref:
// the first calendar day of that month, open-ended upward.
func CurrentMonthWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start.Format(time.DateOnly)}
}

// PreviousMonthWindow returns the window for the month immediately before
// the one containing ref, from its first day to its last day inclusive.
// Month and year rollover come from time.Date normalization, so a January
// reference yields December of the prior year.
func PreviousMonthWindow(ref time.Time) Window {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: first.AddDate(0, -1, 0).Format(time.DateOnly),
		End:   first.AddDate(0, 0, -1).Format(time.DateOnly),
	}
}
