package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/taskman/app/store"
	"github.com/umputun/taskman/app/store/mocks"
	"github.com/umputun/taskman/app/task"
)

func prepModel(t *testing.T, tasks ...task.Task) (*Model, *store.Store) {
	if len(tasks) == 0 {
		tasks = []task.Task{
			{Name: "one", Description: "d1", Priority: task.PriorityLow, DueDate: "2025-03-01"},
			{Name: "two", Description: "d2", Priority: task.PriorityHigh, DueDate: "2025-01-01"},
			{Name: "three", Description: "d3", Priority: task.PriorityMedium, DueDate: "2025-02-01"},
		}
	}
	saved := tasks
	be := &mocks.BackendMock{
		LoadFunc: func() ([]task.Task, error) {
			res := make([]task.Task, len(saved))
			copy(res, saved)
			return res, nil
		},
		SaveFunc:   func(tt []task.Task) error { saved = tt; return nil },
		StringFunc: func() string { return "mem" },
	}
	st := store.New(be, nil)
	require.NoError(t, st.Load())
	return New(st), st
}

var specialKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"down":   tea.KeyDown,
	"up":     tea.KeyUp,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+u": tea.KeyCtrlU,
}

// press sends keys one by one, returns the command of the last one
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if kt, ok := specialKeys[k]; ok {
			msg = tea.KeyMsg{Type: kt}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func names(tasks []task.Task) []string {
	res := make([]string, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, t.Name)
	}
	return res
}

func TestModel_Initial(t *testing.T) {
	m, _ := prepModel(t)
	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "one", "d1", "Low", "2025-03-01"}, []string(rows[0]))
	assert.Equal(t, "3", rows[2][0])

	v := m.View()
	assert.Contains(t, v, "Personal Task Manager")
	assert.Contains(t, v, "two")
}

func TestModel_Quit(t *testing.T) {
	m, _ := prepModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Add(t *testing.T) {
	m, st := prepModel(t)
	press(m, "a")
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Medium", m.form.inputs[2].Value(), "priority prefilled")

	press(m, "new task", "tab", "some details", "tab", "tab", "2025-05-01", "enter")
	assert.Equal(t, modeList, m.mode)
	assert.False(t, m.statusErr, m.status)
	assert.Contains(t, m.status, "added")
	require.Equal(t, 4, st.Len())
	added, err := st.Get(3)
	require.NoError(t, err)
	assert.True(t, added.Same(task.Task{Name: "new task", Description: "some details", Priority: task.PriorityMedium, DueDate: "2025-05-01"}))
	assert.Len(t, m.table.Rows(), 4)
	assert.Equal(t, 3, m.table.Cursor(), "cursor on the new task")
}

func TestModel_AddRejected(t *testing.T) {
	tbl := []struct {
		name  string
		keys  []string
		error string
	}{
		{"empty name", []string{"tab", "tab", "tab", "2025-05-01", "enter"}, "name is required"},
		{"not a calendar date", []string{"x", "tab", "tab", "tab", "2025-02-30", "enter"}, "not a valid"},
		{"bad priority", []string{"x", "tab", "tab", "ctrl+u", "urgent", "tab", "2025-05-01", "enter"}, "invalid priority"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			m, st := prepModel(t)
			press(m, "a")
			press(m, tt.keys...)
			assert.Equal(t, modeForm, m.mode, "form stays open")
			assert.True(t, m.statusErr)
			assert.Contains(t, m.status, tt.error)
			assert.Equal(t, 3, st.Len())

			press(m, "esc")
			assert.Equal(t, modeList, m.mode)
			assert.Equal(t, 3, st.Len())
		})
	}
}

func TestModel_FormKeysAreInput(t *testing.T) {
	m, _ := prepModel(t)
	press(m, "a", "q", "d", "1")
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, "qd1", m.form.inputs[0].Value())
}

func TestModel_Edit(t *testing.T) {
	m, st := prepModel(t)
	press(m, "down", "e")
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "two", m.form.inputs[0].Value())
	assert.Equal(t, "High", m.form.inputs[2].Value())

	press(m, "ctrl+u", "deux", "tab", "tab", "ctrl+u", "low", "enter")
	assert.Equal(t, modeList, m.mode)
	assert.False(t, m.statusErr, m.status)
	assert.Equal(t, []string{"one", "deux", "three"}, names(st.List()))
	upd, err := st.Get(1)
	require.NoError(t, err)
	assert.Equal(t, task.PriorityLow, upd.Priority)
	assert.Equal(t, "d2", upd.Description)
}

func TestModel_EditFilteredRow(t *testing.T) {
	m, st := prepModel(t)
	press(m, "/", "three", "enter")
	require.Equal(t, modeList, m.mode)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "3", m.table.Rows()[0][0], "row shows position in the store")

	press(m, "e", "ctrl+u", "trois", "enter")
	assert.Equal(t, []string{"one", "two", "trois"}, names(st.List()))
}

func TestModel_Delete(t *testing.T) {
	m, st := prepModel(t)
	press(m, "down", "d")
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.status, "'two'")

	press(m, "n")
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "deletion cancelled", m.status)
	assert.Equal(t, 3, st.Len())

	press(m, "d", "y")
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []string{"one", "three"}, names(st.List()))
	assert.Len(t, m.table.Rows(), 2)
	assert.Contains(t, m.status, "deleted")
}

func TestModel_DeleteLastKeepsCursorInRange(t *testing.T) {
	m, st := prepModel(t)
	press(m, "down", "down", "d", "y")
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 1, m.table.Cursor())

	press(m, "d", "y", "d", "y")
	assert.Equal(t, 0, st.Len())
	press(m, "d")
	assert.Equal(t, modeList, m.mode)
	assert.True(t, m.statusErr)
}

func TestModel_SortToggles(t *testing.T) {
	m, st := prepModel(t)

	press(m, "3")
	assert.Equal(t, []string{"two", "three", "one"}, names(st.List()))
	assert.Contains(t, m.status, "ascending")

	press(m, "3")
	assert.Equal(t, []string{"one", "three", "two"}, names(st.List()))
	assert.Contains(t, m.status, "descending")

	press(m, "1")
	assert.Equal(t, []string{"one", "three", "two"}, names(st.List()))
	assert.Contains(t, m.status, "ascending")

	press(m, "4")
	assert.Equal(t, []string{"two", "three", "one"}, names(st.List()))
	assert.Equal(t, "two", m.table.Rows()[0][1])
}

func TestModel_SortByBadDate(t *testing.T) {
	m, st := prepModel(t,
		task.Task{Name: "b", Priority: task.PriorityLow, DueDate: "2025-02-30"},
		task.Task{Name: "a", Priority: task.PriorityLow, DueDate: "2025-01-01"},
	)
	press(m, "4")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "due date")
	assert.Equal(t, []string{"b", "a"}, names(st.List()))

	press(m, "1")
	assert.False(t, m.statusErr)
	assert.Equal(t, []string{"a", "b"}, names(st.List()))
}

func TestModel_Filter(t *testing.T) {
	m, st := prepModel(t)
	press(m, "/", "T", "enter")
	assert.Equal(t, store.Criteria{Name: "T"}, m.criteria)
	assert.Len(t, m.table.Rows(), 2)
	assert.Contains(t, m.View(), "filter:")

	press(m, "/", "tab", "ctrl+u", "high", "enter")
	assert.Equal(t, store.Criteria{Name: "T", Priority: "High"}, m.criteria)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "two", m.table.Rows()[0][1])

	press(m, "c")
	assert.True(t, m.criteria.IsZero())
	assert.Len(t, m.table.Rows(), 3)
	assert.Equal(t, 3, st.Len(), "filter never changes the store")
}

func TestModel_FilterRejected(t *testing.T) {
	m, _ := prepModel(t)
	press(m, "/", "tab", "ctrl+u", "urgent", "enter")
	assert.Equal(t, modeFilter, m.mode)
	assert.True(t, m.statusErr)

	press(m, "esc")
	assert.Equal(t, modeList, m.mode)
	assert.True(t, m.criteria.IsZero())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := prepModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	tall := m.table.Height()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	assert.Greater(t, tall, m.table.Height())
	assert.Equal(t, modeList, m.mode)
}
