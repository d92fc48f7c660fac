package cmd

import (
	"fmt"

	"github.com/umputun/taskman/app/task"
)

// AddCommand set of flags and command for add
type AddCommand struct {
	Name        string `short:"n" long:"name" required:"true" description:"task name"`
	Description string `short:"d" long:"description" description:"task description"`
	Priority    string `short:"p" long:"priority" default:"Medium" description:"task priority, High, Medium or Low"`
	DueDate     string `short:"t" long:"due" required:"true" description:"due date, YYYY-MM-DD"`
	CommonOpts
}

// Execute is the entry point for "add" command, called by flag parser
func (a *AddCommand) Execute(_ []string) error {
	st, done, err := a.openStore()
	if err != nil {
		return err
	}
	defer done()

	t, err := st.Add(task.Task{Name: a.Name, Description: a.Description, Priority: task.Priority(a.Priority), DueDate: a.DueDate})
	if err != nil {
		if t.Name == "" { // validation failed, nothing added
			return fmt.Errorf("can't add task: %w", err)
		}
		return fmt.Errorf("task %q added but not saved: %w", t.Name, err)
	}
	fmt.Fprintf(a.Stdout, "Task #%d %q added successfully\n", st.Len(), t.Name)
	return nil
}
