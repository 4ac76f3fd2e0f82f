package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tidy/internal/model"
	"github.com/idilsaglam/tidy/internal/store"
	"github.com/idilsaglam/tidy/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) checkbox() string {
	t := ui.Current()
	switch {
	case i.Trashed:
		return t.BoxTrashed
	case i.Completed:
		return t.BoxChecked
	default:
		return t.BoxUnchecked
	}
}

// Implement list.Item interface
func (i listItem) Title() string       { return fmt.Sprintf("%s %s", i.checkbox(), i.Text) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(it.checkbox())
	text := it.Text
	switch {
	case it.Trashed:
		box = errorStyle.Render(it.checkbox())
		text = trashedStyle.Render(text)
	case it.Completed:
		box = successStyle.Render(it.checkbox())
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type sessionModel struct {
	st   *store.Store
	list list.Model

	// Inline add/edit share one text input.
	ti      textinput.Model
	adding  bool
	editing bool
	editID  int64

	width  int
	height int
}

func newSessionModel(st *store.Store) sessionModel {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings
	extra := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "trash/restore")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "purge trash")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/1-4", "view")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }

	m := sessionModel{
		st:     st,
		list:   l,
		width:  80,
		height: 24,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item..."
	m.ti.CharLimit = 200

	m.refresh()
	return m
}

// refresh rebuilds the visible rows and the header from store state.
func (m *sessionModel) refresh() {
	vis := m.st.Visible()
	rows := make([]list.Item, 0, len(vis))
	for _, it := range vis {
		rows = append(rows, listItem{it})
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.list.Title = m.headerLine()
}

// headerLine renders the mode selector plus live counts.
func (m *sessionModel) headerLine() string {
	completed, active, trashed := m.st.Stats()

	tabs := make([]string, 0, 4)
	for _, f := range store.Filters() {
		label := f.String()
		if f == m.st.Filter() {
			label = activeTabStyle.Render(label)
		} else {
			label = tabStyle.Render(label)
		}
		tabs = append(tabs, label)
	}

	t := ui.Current()
	return fmt.Sprintf("%s  %s   %s %d  %s %d  %s %d",
		titleStyle.Render("Tidy"),
		strings.Join(tabs, tabStyle.Render(" · ")),
		successStyle.Render(t.SymDone), completed,
		pendingStyle.Render(t.SymUnchecked), active,
		errorStyle.Render(t.SymTrash), trashed,
	)
}

// selected returns the item under the cursor in the current view.
func (m *sessionModel) selected() (model.Item, bool) {
	if li, ok := m.list.SelectedItem().(listItem); ok {
		return li.Item, true
	}
	return model.Item{}, false
}

// canAdd mirrors when the entry field is offered: always in the all and
// active views, in the trash view only when it has rows, never in the
// completed view.
func (m *sessionModel) canAdd() bool {
	switch m.st.Filter() {
	case store.FilterCompleted:
		return false
	case store.FilterTrashed:
		return len(m.st.Visible()) > 0
	default:
		return true
	}
}

func (m *sessionModel) canPurge() bool {
	return m.st.Filter() == store.FilterTrashed && m.st.HasTrashed()
}

// runSession starts the Bubble Tea program over the given store.
func runSession(st *store.Store) error {
	p := tea.NewProgram(newSessionModel(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Update and View implement Bubble Tea's Model on sessionModel
func (m sessionModel) Init() tea.Cmd { return nil }

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// add mode: the input owns every key until enter/esc
	if m.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				// Empty input is suppressed silently; no trimming, so
				// whitespace-only is a valid item.
				m.st.SetDraft(m.ti.Value())
				if m.st.Submit() {
					m.ti.SetValue("")
					m.ti.Blur()
					m.adding = false
					m.refresh()
				}
				return m, nil
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				m.st.Edit(m.editID, m.ti.Value())
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				m.refresh()
				return m, nil
			case "esc":
				m.editing = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// While the list's fuzzy filter is typing, it owns the keyboard.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "tab":
			m.st.SetFilter(m.st.Filter().Next())
			m.refresh()
			return m, nil
		case "1", "2", "3", "4":
			m.st.SetFilter(store.Filters()[int(msg.String()[0]-'1')])
			m.refresh()
			return m, nil

		case " ":
			// The completion toggle is disabled on trashed rows.
			if it, ok := m.selected(); ok && !it.Trashed {
				m.st.ToggleCompleted(it.ID)
				m.refresh()
			}
			return m, nil

		case "d":
			if it, ok := m.selected(); ok {
				m.st.ToggleTrashed(it.ID)
				m.refresh()
			}
			return m, nil

		case "a":
			if !m.canAdd() {
				return m, nil
			}
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New item..."
			m.ti.Focus()
			return m, nil

		case "e":
			if it, ok := m.selected(); ok && it.Editable() {
				m.editing = true
				m.editID = it.ID
				m.ti.SetValue(it.Text)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit item..."
				m.ti.Focus()
			}
			return m, nil

		case "p":
			if m.canPurge() {
				n := m.st.PurgeTrashed()
				m.refresh()
				return m, m.list.NewStatusMessage(mutedStyle.Render(fmt.Sprintf("purged %d", n)))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m sessionModel) View() string {
	listHeight := m.height - 4
	if m.adding || m.editing {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		inputLine := title + "\n" + m.ti.View()
		content = content + "\n" + inputBarStyle.Render(inputLine)
	}
	return panelStyle.Render(content)
}
