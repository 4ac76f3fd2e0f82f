package store

import (
	"reflect"
	"testing"

	"github.com/idilsaglam/tidy/internal/model"
)

func TestAdd_PrependsWithFreshFlags(t *testing.T) {
	t.Parallel()

	s := New()
	if !s.Add("first") {
		t.Fatal("Add(first) rejected")
	}
	if !s.Add("second") {
		t.Fatal("Add(second) rejected")
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	// Newest first.
	if items[0].Text != "second" || items[1].Text != "first" {
		t.Fatalf("order = [%q %q], want [second first]", items[0].Text, items[1].Text)
	}
	if items[0].Completed || items[0].Trashed {
		t.Fatalf("new item flags = %+v, want both false", items[0])
	}
	if items[0].ID == items[1].ID {
		t.Fatalf("duplicate id %d", items[0].ID)
	}
}

func TestAdd_EmptyIsNoOp(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("keep me")
	before := s.Items()

	if s.Add("") {
		t.Fatal("Add(\"\") reported a change")
	}
	if got := s.Items(); !reflect.DeepEqual(before, got) {
		t.Fatalf("collection changed:\nbefore: %#v\nafter:  %#v", before, got)
	}
}

func TestAdd_WhitespaceOnlyIsAccepted(t *testing.T) {
	t.Parallel()

	// Only the exact empty string is rejected; no trimming happens.
	s := New()
	if !s.Add("   ") {
		t.Fatal("whitespace-only text was rejected")
	}
	if got := s.Items()[0].Text; got != "   " {
		t.Fatalf("text = %q, want %q", got, "   ")
	}
}

func TestToggles_AreInvolutions(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("x")
	id := s.Items()[0].ID

	s.ToggleCompleted(id)
	s.ToggleCompleted(id)
	if it, _ := s.Find(id); it.Completed {
		t.Fatalf("double ToggleCompleted left completed=true")
	}

	s.ToggleTrashed(id)
	s.ToggleTrashed(id)
	if it, _ := s.Find(id); it.Trashed {
		t.Fatalf("double ToggleTrashed left trashed=true")
	}
}

func TestToggleCompleted_WorksWhileTrashed(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("x")
	id := s.Items()[0].ID

	s.ToggleTrashed(id)
	if !s.ToggleCompleted(id) {
		t.Fatal("ToggleCompleted refused a trashed item")
	}
	it, _ := s.Find(id)
	if !it.Completed || !it.Trashed {
		t.Fatalf("flags = %+v, want completed && trashed", it)
	}
}

func TestEdit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prep     func(s *Store, id int64)
		wantText string
		wantOK   bool
	}{
		{"plain item", func(*Store, int64) {}, "new", true},
		{"completed item", func(s *Store, id int64) { s.ToggleCompleted(id) }, "old", false},
		{"trashed item", func(s *Store, id int64) { s.ToggleTrashed(id) }, "old", false},
		{"completed and trashed", func(s *Store, id int64) {
			s.ToggleCompleted(id)
			s.ToggleTrashed(id)
		}, "old", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Add("old")
			id := s.Items()[0].ID
			tc.prep(s, id)

			if ok := s.Edit(id, "new"); ok != tc.wantOK {
				t.Fatalf("Edit ok = %v, want %v", ok, tc.wantOK)
			}
			if it, _ := s.Find(id); it.Text != tc.wantText {
				t.Fatalf("text = %q, want %q", it.Text, tc.wantText)
			}
		})
	}
}

func TestUnknownIDs_AreNoOps(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("a")
	before := s.Items()

	if s.Edit(999, "x") || s.ToggleCompleted(999) || s.ToggleTrashed(999) {
		t.Fatal("an unknown id reported a change")
	}
	if got := s.Items(); !reflect.DeepEqual(before, got) {
		t.Fatalf("collection changed by unknown-id ops:\nbefore: %#v\nafter:  %#v", before, got)
	}
}

func TestPurgeTrashed(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	items := s.Items() // [c b a]
	s.ToggleTrashed(items[1].ID)

	if n := s.PurgeTrashed(); n != 1 {
		t.Fatalf("removed = %d, want 1", n)
	}
	got := s.Items()
	if len(got) != 2 || got[0].Text != "c" || got[1].Text != "a" {
		t.Fatalf("survivors = %#v, want [c a] in order", got)
	}
	if s.HasTrashed() {
		t.Fatal("trashed item survived the purge")
	}

	// Purging an already-clean collection removes nothing.
	if n := s.PurgeTrashed(); n != 0 {
		t.Fatalf("second purge removed %d", n)
	}
}

func TestDraftSubmit(t *testing.T) {
	t.Parallel()

	s := New()

	s.SetDraft("")
	if s.Submit() {
		t.Fatal("empty draft was submitted")
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}

	s.SetDraft("buy milk")
	if !s.Submit() {
		t.Fatal("draft submit rejected")
	}
	if s.Draft() != "" {
		t.Fatalf("draft = %q, want cleared", s.Draft())
	}
	if got := s.Items()[0].Text; got != "buy milk" {
		t.Fatalf("text = %q, want %q", got, "buy milk")
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	s := New()
	s.Seed([]string{"a", "b", "c", "d"})
	items := s.Items()
	s.ToggleCompleted(items[0].ID)
	s.ToggleTrashed(items[1].ID)

	completed, active, trashed := s.Stats()
	if completed != 1 || active != 2 || trashed != 1 {
		t.Fatalf("stats = (%d,%d,%d), want (1,2,1)", completed, active, trashed)
	}
}

// The end-to-end walk from the product notes: add, complete, view by mode,
// trash, purge.
func TestSessionScenario(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("buy milk")

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	it := items[0]
	if it.Text != "buy milk" || it.Completed || it.Trashed {
		t.Fatalf("item = %+v", it)
	}

	s.ToggleCompleted(it.ID)
	if got, _ := s.Find(it.ID); !got.Completed {
		t.Fatal("completed flag not set")
	}

	s.SetFilter(FilterActive)
	if got := s.Visible(); len(got) != 0 {
		t.Fatalf("active view = %#v, want empty", got)
	}

	s.SetFilter(FilterCompleted)
	if got := s.Visible(); len(got) != 1 || got[0].ID != it.ID {
		t.Fatalf("completed view = %#v, want the item", got)
	}

	s.ToggleTrashed(it.ID)
	s.SetFilter(FilterTrashed)
	if got := s.Visible(); len(got) != 1 || got[0].ID != it.ID {
		t.Fatalf("trashed view = %#v, want the item", got)
	}

	s.PurgeTrashed()
	if s.Len() != 0 {
		t.Fatalf("len = %d after purge, want 0", s.Len())
	}
}

func TestItems_ReturnsACopy(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add("a")
	snapshot := s.Items()
	snapshot[0].Text = "mutated"

	if it, _ := s.Find(snapshot[0].ID); it.Text != "a" {
		t.Fatalf("store observed caller mutation: %q", it.Text)
	}
}

func statsItems() []model.Item {
	return []model.Item{
		{ID: 1, Text: "active"},
		{ID: 2, Text: "done", Completed: true},
		{ID: 3, Text: "binned", Trashed: true},
		{ID: 4, Text: "done and binned", Completed: true, Trashed: true},
	}
}

func TestFilterPredicates(t *testing.T) {
	t.Parallel()

	items := statsItems()
	tests := []struct {
		filter  Filter
		wantIDs []int64
	}{
		{FilterAll, []int64{1, 2}},
		{FilterCompleted, []int64{2}},
		{FilterActive, []int64{1}},
		{FilterTrashed, []int64{3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.filter.String(), func(t *testing.T) {
			got := tc.filter.Apply(items)
			ids := make([]int64, 0, len(got))
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			if !reflect.DeepEqual(ids, tc.wantIDs) {
				t.Fatalf("ids = %v, want %v", ids, tc.wantIDs)
			}
		})
	}
}

func TestFilterApply_IsIdempotent(t *testing.T) {
	t.Parallel()

	items := statsItems()
	for _, f := range Filters() {
		once := f.Apply(items)
		twice := f.Apply(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("%s: re-filter changed the sequence:\nonce:  %#v\ntwice: %#v", f, once, twice)
		}
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	for _, f := range Filters() {
		got, err := ParseFilter(f.String())
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", f.String(), err)
		}
		if got != f {
			t.Fatalf("ParseFilter(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if _, err := ParseFilter("bogus"); err == nil {
		t.Fatal("ParseFilter(bogus) succeeded")
	}
}

func TestFilterNext_Cycles(t *testing.T) {
	t.Parallel()

	f := FilterAll
	seen := map[Filter]bool{}
	for i := 0; i < 4; i++ {
		seen[f] = true
		f = f.Next()
	}
	if f != FilterAll || len(seen) != 4 {
		t.Fatalf("cycle broke: back at %v after %d distinct modes", f, len(seen))
	}
}
