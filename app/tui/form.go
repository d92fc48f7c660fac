package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/taskman/app/store"
	"github.com/umputun/taskman/app/task"
)

// inputGroup is a set of labeled text inputs with one focused at a time.
// Used by both task form and filter form.
type inputGroup struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInputGroup(title string, labels, values []string) inputGroup {
	g := inputGroup{title: title, labels: labels, inputs: make([]textinput.Model, len(labels))}
	for i := range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		if i < len(values) {
			ti.SetValue(values[i])
		}
		g.inputs[i] = ti
	}
	g.inputs[0].Focus()
	return g
}

// move shifts focus by delta, wrapping around
func (g *inputGroup) move(delta int) {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus + delta + len(g.inputs)) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

// update passes the message to the focused input
func (g *inputGroup) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return cmd
}

func (g inputGroup) values() []string {
	res := make([]string, len(g.inputs))
	for i, in := range g.inputs {
		res[i] = strings.TrimSpace(in.Value())
	}
	return res
}

func (g inputGroup) view() string {
	lines := []string{titleStyle.Render(g.title)}
	for i, in := range g.inputs {
		lines = append(lines, labelStyle.Render(g.labels[i])+in.View())
	}
	return formStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

var taskLabels = []string{"Name:", "Description:", "Priority:", "Due Date (YYYY-MM-DD):"}

// taskForm is add/edit dialog. editID is empty for a new task.
type taskForm struct {
	inputGroup
	editID string
}

func newAddForm() taskForm {
	return taskForm{inputGroup: newInputGroup("Add Task", taskLabels, []string{"", "", string(task.PriorityMedium), ""})}
}

func newEditForm(t task.Task) taskForm {
	vals := []string{t.Name, t.Description, string(t.Priority), t.DueDate}
	return taskForm{inputGroup: newInputGroup("Edit Task", taskLabels, vals), editID: t.ID}
}

// task makes a task from the form. Due date must be a real calendar date here,
// so the form never accepts something sorting by date can't handle.
func (f taskForm) task() (task.Task, error) {
	vals := f.values()
	if vals[0] == "" {
		return task.Task{}, task.ErrEmptyName
	}
	prio, err := task.ValidatePriority(vals[2])
	if err != nil {
		return task.Task{}, err
	}
	if _, err := task.ParseDueDate(vals[3]); err != nil {
		return task.Task{}, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", task.ErrInvalidDueDate, vals[3])
	}
	return task.Task{ID: f.editID, Name: vals[0], Description: vals[1], Priority: prio, DueDate: vals[3]}, nil
}

var filterLabels = []string{"Name contains:", "Priority:", "Due Date (YYYY-MM-DD):"}

func newFilterForm(c store.Criteria) inputGroup {
	prio := c.Priority
	if prio == "" {
		prio = task.PriorityAll
	}
	return newInputGroup("Filters", filterLabels, []string{c.Name, prio, c.DueDate})
}

// criteria makes filter criteria from the filter form, empty priority means all
func criteria(g inputGroup) (store.Criteria, error) {
	vals := g.values()
	c := store.Criteria{Name: vals[0], DueDate: vals[2]}
	if vals[1] == "" || strings.EqualFold(vals[1], task.PriorityAll) {
		return c, nil
	}
	prio, err := task.ValidatePriority(vals[1])
	if err != nil {
		return store.Criteria{}, err
	}
	c.Priority = string(prio)
	return c, nil
}
