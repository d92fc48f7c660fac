// Package tui is a full-screen terminal interface for the task store.
// It shows tasks in a table and supports add, edit, delete, filter and column sort.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/taskman/app/store"
	"github.com/umputun/taskman/app/task"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeFilter
	modeConfirm
)

// sortKeys maps number keys to sortable columns
var sortKeys = map[string]store.SortKey{
	"1": store.SortByName,
	"2": store.SortByDescription,
	"3": store.SortByPriority,
	"4": store.SortByDueDate,
}

// Model is bubbletea model of the task manager screen
type Model struct {
	st     *store.Store
	keys   keyMap
	table  table.Model
	mode   mode
	form   taskForm
	filter inputGroup

	criteria    store.Criteria
	visible     []task.Task // tasks shown in the table, in row order
	sortKey     store.SortKey
	sortReverse bool
	deleteID    string

	status    string
	statusErr bool
}

// New makes the model for the store, the store should be loaded already
func New(st *store.Store) *Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 24},
		{Title: "Description", Width: 40},
		{Title: "Priority", Width: 10},
		{Title: "Due Date", Width: 12},
	}
	tbl := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(15))
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(dim).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("#ffffff")).Background(accent).Bold(false)
	tbl.SetStyles(s)

	m := &Model{st: st, keys: defaultKeyMap(), table: tbl}
	m.refresh()
	return m
}

// Run starts the terminal interface and blocks until user quits
func Run(st *store.Store, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(New(st), opts...).Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}
	return nil
}

// Init satisfies tea.Model, nothing to start
func (m *Model) Init() tea.Cmd { return nil }

// Update handles a message for the current mode
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(max(wm.Height-10, 3))
		return m, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m, m.updateForm(km)
	case modeFilter:
		return m, m.updateFilter(km)
	case modeConfirm:
		m.updateConfirm(km)
		return m, nil
	default:
		return m, m.updateList(km)
	}
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.form = newAddForm()
		m.mode = modeForm
		m.clearStatus()
	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			m.setError(errors.New("no task selected"))
			return nil
		}
		m.form = newEditForm(t)
		m.mode = modeForm
		m.clearStatus()
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			m.setError(errors.New("no task selected"))
			return nil
		}
		m.deleteID = t.ID
		m.mode = modeConfirm
		m.setStatus(fmt.Sprintf("Are you sure you want to delete '%s'? (y/n)", t.Name))
	case key.Matches(msg, m.keys.Filter):
		m.filter = newFilterForm(m.criteria)
		m.mode = modeFilter
		m.clearStatus()
	case key.Matches(msg, m.keys.Clear):
		m.criteria = store.Criteria{}
		m.refresh()
		m.setStatus("filters cleared")
	case key.Matches(msg, m.keys.Sort):
		m.sortBy(sortKeys[msg.String()])
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
	return nil
}

// sortBy sorts the store by column. Choosing the same column again flips the direction.
func (m *Model) sortBy(k store.SortKey) {
	reverse := false
	if k == m.sortKey {
		reverse = !m.sortReverse
	}
	if err := m.st.Sort(k, reverse); err != nil {
		m.setError(err)
		m.refresh()
		return
	}
	m.sortKey, m.sortReverse = k, reverse
	m.refresh()
	dir := "ascending"
	if reverse {
		dir = "descending"
	}
	m.setStatus(fmt.Sprintf("sorted by %s, %s", k, dir))
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.clearStatus()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.form.move(1)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.form.move(-1)
		return nil
	case key.Matches(msg, m.keys.Submit):
		m.saveForm()
		return nil
	}
	return m.form.update(msg)
}

// saveForm adds or updates the task from the form. Invalid input keeps the form open.
func (m *Model) saveForm() {
	t, err := m.form.task()
	if err != nil {
		m.setError(err)
		return
	}

	if m.form.editID == "" {
		added, err := m.st.Add(t)
		m.mode = modeList
		m.refresh()
		if err != nil && added.Name == "" {
			m.setError(err)
			return
		}
		if err != nil {
			m.setError(fmt.Errorf("task %q added, but %w", added.Name, err))
			return
		}
		m.selectID(added.ID)
		m.setStatus(fmt.Sprintf("task %q added", added.Name))
		return
	}

	idx := m.st.IndexOf(m.form.editID)
	patch := task.Patch{Name: &t.Name, Description: &t.Description, Priority: task.StrPtr(string(t.Priority)), DueDate: &t.DueDate}
	err = m.st.Update(idx, patch)
	m.mode = modeList
	m.refresh()
	if err != nil {
		m.setError(err)
		return
	}
	m.selectID(m.form.editID)
	m.setStatus(fmt.Sprintf("task %q updated", t.Name))
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.clearStatus()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.filter.move(1)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.filter.move(-1)
		return nil
	case key.Matches(msg, m.keys.Submit):
		c, err := criteria(m.filter)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.criteria = c
		m.mode = modeList
		m.refresh()
		m.setStatus(fmt.Sprintf("%d task(s) match", len(m.visible)))
		return nil
	}
	return m.filter.update(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.mode = modeList
		removed, err := m.st.Delete(m.st.IndexOf(m.deleteID))
		m.deleteID = ""
		m.refresh()
		if err != nil && removed.Name == "" {
			m.setError(err)
			return
		}
		if err != nil {
			m.setError(fmt.Errorf("task %q deleted, but %w", removed.Name, err))
			return
		}
		m.setStatus(fmt.Sprintf("task %q deleted", removed.Name))
	case key.Matches(msg, m.keys.No):
		m.mode = modeList
		m.deleteID = ""
		m.setStatus("deletion cancelled")
	}
}

// refresh rebuilds table rows from the store with current filter, keeps cursor in range
func (m *Model) refresh() {
	m.visible = m.st.Filter(m.criteria)
	rows := make([]table.Row, 0, len(m.visible))
	for _, t := range m.visible {
		num := strconv.Itoa(m.st.IndexOf(t.ID) + 1)
		rows = append(rows, table.Row{num, oneLine(t.Name), oneLine(t.Description), string(t.Priority), t.DueDate})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// selected returns the task under the cursor
func (m *Model) selected() (task.Task, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[c], true
}

// selectID moves cursor to the row with the task id, if visible
func (m *Model) selectID(id string) {
	for i, t := range m.visible {
		if t.ID == id {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	log.Printf("[WARN] %v", err)
	m.status, m.statusErr = "Error: "+err.Error(), true
}

func (m *Model) clearStatus() {
	m.status, m.statusErr = "", false
}

// View renders current screen
func (m *Model) View() string {
	var body string
	switch m.mode {
	case modeForm:
		body = m.form.view()
	case modeFilter:
		body = m.filter.view()
	default:
		body = baseStyle.Render(m.table.View())
	}

	parts := []string{titleStyle.Render("Personal Task Manager"), body}
	if !m.criteria.IsZero() {
		parts = append(parts, filterStyle.Render(fmt.Sprintf("filter: name=%q priority=%q date=%q",
			m.criteria.Name, m.criteria.Priority, m.criteria.DueDate)))
	}
	if m.status != "" {
		st := statusStyle
		if m.statusErr {
			st = errorStyle
		}
		parts = append(parts, st.Render(m.status))
	}
	switch m.mode {
	case modeForm, modeFilter:
		parts = append(parts, helpDescStyle.Render("tab next field • enter save • esc cancel"))
	case modeConfirm:
	default:
		parts = append(parts, m.keys.help())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
