package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/taskman/app/persistence"
	"github.com/umputun/taskman/app/task"
)

func runMenu(t *testing.T, content string, input ...string) (string, CommonOpts) {
	opts, stdout, _ := prepOpts(t, content, strings.Join(input, "\n")+"\n")
	c := MenuCommand{}
	c.SetCommon(opts)
	require.NoError(t, c.Execute(nil))
	return stdout.String(), opts
}

func TestMenu_Exit(t *testing.T) {
	out, _ := runMenu(t, seed, "7")
	assert.Contains(t, out, "Welcome to Personal Task Manager!")
	assert.Contains(t, out, "7. Exit")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_InvalidChoice(t *testing.T) {
	out, _ := runMenu(t, seed, "9", "", "7")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice!"))
}

func TestMenu_EndOfInput(t *testing.T) {
	out, opts := runMenu(t, seed, "1", "half typed")
	assert.Contains(t, out, "Goodbye!")
	assert.Equal(t, []string{"Pay rent", "Buy milk", "Write report"}, loadNames(t, opts.File))
}

func TestMenu_Add(t *testing.T) {
	out, opts := runMenu(t, seed, "1", "", "Call mom", "sunday", "urgent", "high", "2025-13-01", "2025-05-01", "7")
	assert.Equal(t, 3, strings.Count(out, "Invalid input!"), "empty name, bad priority and bad date")
	assert.Contains(t, out, "Task Call mom added successfully")

	tasks, err := persistence.NewJSON(opts.File).Load()
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	assert.Equal(t, task.Task{Name: "Call mom", Description: "sunday", Priority: task.PriorityHigh, DueDate: "2025-05-01"}, tasks[3])
}

func TestMenu_View(t *testing.T) {
	out, _ := runMenu(t, seed, "2", "7")
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "Write report")

	out, _ = runMenu(t, "", "2", "7")
	assert.Contains(t, out, "No tasks found.")
}

func TestMenu_UpdateKeepsEmptyFields(t *testing.T) {
	out, opts := runMenu(t, seed, "3", "2", "", "", "high", "", "7")
	assert.Contains(t, out, "Current Name: Buy milk")
	assert.Contains(t, out, "Task #2 updated successfully")

	tasks, err := persistence.NewJSON(opts.File).Load()
	require.NoError(t, err)
	assert.Equal(t, task.Task{Name: "Buy milk", Priority: task.PriorityHigh, DueDate: "2025-02-03"}, tasks[1])
}

func TestMenu_UpdateReprompts(t *testing.T) {
	out, opts := runMenu(t, seed, "3", "9", "abc", "1", "", "", "someday", "", "2025-00-10", "", "7")
	assert.Equal(t, 2, strings.Count(out, "Please enter a number between 1 and 3."))
	assert.Equal(t, 2, strings.Count(out, "Invalid input!"))
	assert.Contains(t, out, "Task #1 unchanged")
	assert.Equal(t, []string{"Pay rent", "Buy milk", "Write report"}, loadNames(t, opts.File))
}

func TestMenu_UpdateNoTasks(t *testing.T) {
	out, _ := runMenu(t, "[]", "3", "7")
	assert.Contains(t, out, "No tasks found.")
	assert.NotContains(t, out, "Enter the task number")
}

func TestMenu_Delete(t *testing.T) {
	out, opts := runMenu(t, seed, "4", "1", "YES", "7")
	assert.Contains(t, out, "Are you sure you want to delete 'Pay rent'? (Yes/No):")
	assert.Contains(t, out, "Task 'Pay rent' deleted successfully!")
	assert.Equal(t, []string{"Buy milk", "Write report"}, loadNames(t, opts.File))

	out, opts = runMenu(t, seed, "4", "1", "y", "7")
	assert.Contains(t, out, "Deletion cancelled")
	assert.Equal(t, []string{"Pay rent", "Buy milk", "Write report"}, loadNames(t, opts.File))
}

func TestMenu_Filter(t *testing.T) {
	out, _ := runMenu(t, seed, "5", "r", "", "", "7")
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "Write report")
	assert.NotContains(t, out, "Buy milk")

	out, _ = runMenu(t, seed, "5", "", "urgent", "low", "", "7")
	assert.Contains(t, out, "Invalid input!")
	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "Pay rent")

	out, _ = runMenu(t, seed, "5", "", "", "2030-01-01", "7")
	assert.Contains(t, out, "No tasks found.")
}

func TestMenu_FilterPriorityAll(t *testing.T) {
	for _, prio := range []string{"All", "all", "ALL"} {
		t.Run(prio, func(t *testing.T) {
			out, _ := runMenu(t, seed, "5", "", prio, "", "7")
			assert.NotContains(t, out, "Invalid input!")
			assert.Contains(t, out, "Pay rent")
			assert.Contains(t, out, "Buy milk")
			assert.Contains(t, out, "Write report")
		})
	}

	out, _ := runMenu(t, seed, "5", "", "all", "2025-03-31", "7")
	assert.Contains(t, out, "Write report")
	assert.NotContains(t, out, "Pay rent")
}

func TestMenu_Sort(t *testing.T) {
	out, opts := runMenu(t, seed, "6", "color", "priority", "no", "7")
	assert.Contains(t, out, "Invalid input!")
	assert.Equal(t, []string{"Pay rent", "Write report", "Buy milk"}, loadNames(t, opts.File))

	_, opts = runMenu(t, seed, "6", "due_date", "yes", "7")
	assert.Equal(t, []string{"Pay rent", "Write report", "Buy milk"}, loadNames(t, opts.File))
}

func TestMenu_SortFails(t *testing.T) {
	content := `[{"name": "a", "description": "", "priority": "Low", "due_date": "2025-02-30"},
		{"name": "b", "description": "", "priority": "Low", "due_date": "2025-01-01"}]`
	out, opts := runMenu(t, content, "6", "due_date", "no", "7")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "can't sort by due date")
	assert.Contains(t, out, "Goodbye!")
	assert.Equal(t, []string{"a", "b"}, loadNames(t, opts.File))
}
