package store

import (
	"fmt"

	"github.com/idilsaglam/tidy/internal/model"
)

// Filter selects which items a view shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterActive
	FilterTrashed
)

var filterNames = map[Filter]string{
	FilterAll:       "all",
	FilterCompleted: "completed",
	FilterActive:    "active",
	FilterTrashed:   "trashed",
}

func (f Filter) String() string {
	if n, ok := filterNames[f]; ok {
		return n
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// ParseFilter maps a CLI flag value to a Filter.
func ParseFilter(s string) (Filter, error) {
	for f, n := range filterNames {
		if s == n {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter: %q (want all|completed|active|trashed)", s)
}

// Filters lists the modes in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterActive, FilterTrashed}
}

// Next cycles to the following mode (wraps around).
func (f Filter) Next() Filter {
	return (f + 1) % 4
}

// Match is the per-item predicate for this mode.
// Trashed items are visible only in the trash view.
func (f Filter) Match(it model.Item) bool {
	switch f {
	case FilterCompleted:
		return it.Completed && !it.Trashed
	case FilterActive:
		return !it.Completed && !it.Trashed
	case FilterTrashed:
		return it.Trashed
	default:
		return !it.Trashed
	}
}

// Apply returns the items passing the predicate, order preserved.
// It never mutates the input; re-applying yields the same sequence.
func (f Filter) Apply(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
