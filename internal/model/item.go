package model

// Item is the domain model for a task entry.
// Kept minimal on purpose; it’s easy to evolve.
type Item struct {
	ID        int64
	Text      string
	Completed bool
	Trashed   bool
}

// Editable reports whether the item's text may still be changed.
// Completed or trashed items are frozen until restored/un-done.
func (i Item) Editable() bool {
	return !i.Completed && !i.Trashed
}
