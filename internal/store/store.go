package store

import "github.com/idilsaglam/tidy/internal/model"

// Store owns the session state: the ordered item collection (newest first),
// the active view filter, and the pending-entry draft buffer.
//
// Every operation is synchronous and runs on the caller's goroutine; the TUI
// is the only actor. Mutations build a fresh slice instead of editing shared
// elements in place, so a caller holding an earlier Items() snapshot never
// observes a half-applied change.
type Store struct {
	items  []model.Item
	filter Filter
	draft  string
	nextID int64 // monotonic; IDs never repeat within a session
}

// New returns an empty store with the default ("all") filter.
func New() *Store {
	return &Store{nextID: 1}
}

// Seed adds the given texts in order, as if typed one by one.
// Empty strings are skipped like any other rejected submission.
func (s *Store) Seed(texts []string) {
	for _, t := range texts {
		s.Add(t)
	}
}

// ---------------------------------------------------
// Mutations
// ---------------------------------------------------

// Add prepends a new item and reports whether one was created.
// The empty string is rejected as-is: no trimming, so a whitespace-only
// entry is accepted.
func (s *Store) Add(text string) bool {
	if text == "" {
		return false
	}
	it := model.Item{ID: s.nextID, Text: text}
	s.nextID++
	next := make([]model.Item, 0, len(s.items)+1)
	next = append(next, it)
	next = append(next, s.items...)
	s.items = next
	s.draft = ""
	return true
}

// Edit replaces the text of the item with the given id. Completed and
// trashed items are frozen; those, and unknown ids, are silent no-ops.
func (s *Store) Edit(id int64, text string) bool {
	return s.update(id, func(it model.Item) (model.Item, bool) {
		if !it.Editable() {
			return it, false
		}
		it.Text = text
		return it, true
	})
}

// ToggleCompleted flips the completion flag. Works on trashed items too
// (the view just won't show them outside the trash). Unknown id: no-op.
func (s *Store) ToggleCompleted(id int64) bool {
	return s.update(id, func(it model.Item) (model.Item, bool) {
		it.Completed = !it.Completed
		return it, true
	})
}

// ToggleTrashed moves the item in or out of the trash. Unknown id: no-op.
func (s *Store) ToggleTrashed(id int64) bool {
	return s.update(id, func(it model.Item) (model.Item, bool) {
		it.Trashed = !it.Trashed
		return it, true
	})
}

// PurgeTrashed drops every trashed item, irreversibly. Returns the number
// of items removed. Untrashed items keep their content and relative order.
func (s *Store) PurgeTrashed() int {
	kept := make([]model.Item, 0, len(s.items))
	removed := 0
	for _, it := range s.items {
		if it.Trashed {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return removed
}

// update rebuilds the collection with fn applied to the matching item.
func (s *Store) update(id int64, fn func(model.Item) (model.Item, bool)) bool {
	changed := false
	next := make([]model.Item, len(s.items))
	for i, it := range s.items {
		if it.ID == id && !changed {
			it, changed = fn(it)
		}
		next[i] = it
	}
	if !changed {
		return false
	}
	s.items = next
	return true
}

// ---------------------------------------------------
// Input controller (pending-entry buffer)
// ---------------------------------------------------

func (s *Store) Draft() string     { return s.draft }
func (s *Store) SetDraft(v string) { s.draft = v }

// Submit adds the current draft as a new item. An empty draft suppresses
// the add and leaves the buffer alone.
func (s *Store) Submit() bool {
	return s.Add(s.draft)
}

// ---------------------------------------------------
// Views
// ---------------------------------------------------

// SetFilter switches the view mode. Pure re-filter; items are untouched.
func (s *Store) SetFilter(f Filter) { s.filter = f }

func (s *Store) Filter() Filter { return s.filter }

// Visible returns the items passing the active filter, store order.
func (s *Store) Visible() []model.Item {
	return s.filter.Apply(s.items)
}

// Items returns a copy of the whole collection, newest first.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

// Find returns the item with the given id, if present.
func (s *Store) Find(id int64) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// HasTrashed reports whether anything is waiting in the trash.
func (s *Store) HasTrashed() bool {
	for _, it := range s.items {
		if it.Trashed {
			return true
		}
	}
	return false
}

// Stats counts items per bucket for the header line.
func (s *Store) Stats() (completed, active, trashed int) {
	for _, it := range s.items {
		switch {
		case it.Trashed:
			trashed++
		case it.Completed:
			completed++
		default:
			active++
		}
	}
	return
}
