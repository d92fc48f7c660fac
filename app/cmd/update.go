package cmd

import (
	"errors"
	"fmt"

	"github.com/umputun/taskman/app/task"
)

// UpdateCommand set of flags and command for update. Only given flags change the task.
type UpdateCommand struct {
	Name        *string `short:"n" long:"name" description:"new task name"`
	Description *string `short:"d" long:"description" description:"new task description"`
	Priority    *string `short:"p" long:"priority" description:"new priority, High, Medium or Low"`
	DueDate     *string `short:"t" long:"due" description:"new due date, YYYY-MM-DD"`
	Args        struct {
		Number string `positional-arg-name:"NUMBER" description:"task number as shown by list"`
	} `positional-args:"yes" required:"yes"`
	CommonOpts
}

// Execute is the entry point for "update" command, called by flag parser
func (u *UpdateCommand) Execute(_ []string) error {
	patch := task.Patch{Name: u.Name, Description: u.Description, Priority: u.Priority, DueDate: u.DueDate}
	if patch.IsEmpty() {
		return errors.New("nothing to update, set at least one of --name, --description, --priority, --due")
	}

	st, done, err := u.openStore()
	if err != nil {
		return err
	}
	defer done()

	idx, err := parseNumber(u.Args.Number, st.Len())
	if err != nil {
		return err
	}
	if err := st.Update(idx, patch); err != nil {
		return fmt.Errorf("can't update task #%d: %w", idx+1, err)
	}
	fmt.Fprintf(u.Stdout, "Task #%d updated successfully\n", idx+1)
	return nil
}
