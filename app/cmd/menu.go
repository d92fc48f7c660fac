package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/taskman/app/store"
	"github.com/umputun/taskman/app/task"
)

// errInputClosed returned by prompts when stdin has no more lines
var errInputClosed = errors.New("input closed")

// MenuCommand runs the interactive numbered menu. This is also the default without a command.
type MenuCommand struct {
	CommonOpts
}

// menu holds the state of one interactive session
type menu struct {
	st      *store.Store
	scanner *bufio.Scanner
	out     io.Writer
}

// Execute is the entry point for "menu" command, called by flag parser
func (m *MenuCommand) Execute(_ []string) error {
	st, done, err := m.openStore()
	if err != nil {
		return err
	}
	defer done()

	mn := &menu{st: st, scanner: bufio.NewScanner(m.Stdin), out: m.Stdout}
	return mn.run()
}

func (m *menu) run() error {
	fmt.Fprintln(m.out, "Welcome to Personal Task Manager!")
	actions := map[string]func() error{
		"1": m.add,
		"2": m.view,
		"3": m.update,
		"4": m.delete,
		"5": m.filter,
		"6": m.sort,
	}

	for {
		m.printMenu()
		choice, err := m.ask("\nEnter your choice (1-7): ")
		if err != nil {
			fmt.Fprintln(m.out, "\nExiting the Task Manager.\nGoodbye!")
			return nil
		}
		if choice == "7" {
			fmt.Fprintln(m.out, "Exiting the Task Manager.\nGoodbye!")
			return nil
		}
		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(m.out, "Invalid choice! Please enter a number between 1 and 7.")
			continue
		}
		if err := action(); err != nil {
			if errors.Is(err, errInputClosed) {
				fmt.Fprintln(m.out, "\nExiting the Task Manager.\nGoodbye!")
				return nil
			}
			log.Printf("[WARN] %v", err)
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, "\n==== Personal Task Manager ====")
	for i, item := range []string{"Add Task", "View Tasks", "Update Task", "Delete Task", "Filter Tasks", "Sort Tasks", "Exit"} {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, item)
	}
}

// ask prints the prompt and reads one line, trimmed
func (m *menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", errInputClosed, err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}

// askValid repeats the prompt until check accepts the answer. With allowEmpty an empty
// answer is returned as is, this is "keep current value" on update.
func (m *menu) askValid(prompt string, allowEmpty bool, check func(string) (string, error)) (string, error) {
	for {
		ans, err := m.ask(prompt)
		if err != nil {
			return "", err
		}
		if ans == "" && allowEmpty {
			return "", nil
		}
		res, err := check(ans)
		if err == nil {
			return res, nil
		}
		fmt.Fprintf(m.out, "Invalid input! %v\n", err)
	}
}

func checkName(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", task.ErrEmptyName
	}
	return s, nil
}

func checkPriority(s string) (string, error) {
	p, err := task.ValidatePriority(s)
	return string(p), err
}

// checkFilterPriority accepts "All" in any case as no priority filter
func checkFilterPriority(s string) (string, error) {
	if strings.EqualFold(s, task.PriorityAll) {
		return "", nil
	}
	return checkPriority(s)
}

func checkDueDate(s string) (string, error) {
	return s, task.ValidateDueDate(s)
}

func (m *menu) add() error {
	fmt.Fprintln(m.out, "\n==== Add a New Task ====")
	name, err := m.askValid("Enter task name: ", false, checkName)
	if err != nil {
		return err
	}
	descr, err := m.ask("Enter task description: ")
	if err != nil {
		return err
	}
	prio, err := m.askValid("Enter task priority (High/Medium/Low): ", false, checkPriority)
	if err != nil {
		return err
	}
	due, err := m.askValid("Enter task due date (YYYY-MM-DD): ", false, checkDueDate)
	if err != nil {
		return err
	}

	t, err := m.st.Add(task.Task{Name: name, Description: descr, Priority: task.Priority(prio), DueDate: due})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "\nTask %s added successfully\n", t.Name)
	return nil
}

func (m *menu) view() error {
	fmt.Fprintln(m.out, "\n==== View All Tasks ====")
	printTasks(m.out, numberAll(m.st, m.st.List()))
	return nil
}

// selectTask shows all tasks and asks for a task number until a valid one is entered.
// Returns -1 if there are no tasks.
func (m *menu) selectTask(prompt string) (int, error) {
	if m.st.Len() == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return -1, nil
	}
	printTasks(m.out, numberAll(m.st, m.st.List()))
	for {
		ans, err := m.ask(prompt)
		if err != nil {
			return -1, err
		}
		idx, err := parseNumber(ans, m.st.Len())
		if err == nil {
			return idx, nil
		}
		fmt.Fprintf(m.out, "Please enter a number between 1 and %d.\n", m.st.Len())
	}
}

func (m *menu) update() error {
	fmt.Fprintln(m.out, "\n==== Update Task ====")
	idx, err := m.selectTask("\nEnter the task number to update: ")
	if err != nil || idx < 0 {
		return err
	}
	cur, err := m.st.Get(idx)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "\nUpdating Task: %s\n(Press Enter to keep current value)\n", cur.Name)
	var patch task.Patch
	fields := []struct {
		prompt string
		check  func(string) (string, error)
		target **string
	}{
		{fmt.Sprintf("Current Name: %s\nEnter New Name: ", cur.Name), checkName, &patch.Name},
		{fmt.Sprintf("Current Description: %s\nEnter New Description: ", cur.Description), nil, &patch.Description},
		{fmt.Sprintf("Current Priority: %s\nEnter New Priority: ", cur.Priority), checkPriority, &patch.Priority},
		{fmt.Sprintf("Current Due Date: %s\nEnter New Due Date (YYYY-MM-DD): ", cur.DueDate), checkDueDate, &patch.DueDate},
	}
	for _, f := range fields {
		var ans string
		if f.check == nil {
			ans, err = m.ask(f.prompt)
		} else {
			ans, err = m.askValid(f.prompt, true, f.check)
		}
		if err != nil {
			return err
		}
		if ans != "" {
			*f.target = task.StrPtr(ans)
		}
	}

	if patch.IsEmpty() {
		fmt.Fprintf(m.out, "Task #%d unchanged\n", idx+1)
		return nil
	}
	if err := m.st.Update(idx, patch); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Task #%d updated successfully\n", idx+1)
	return nil
}

func (m *menu) delete() error {
	fmt.Fprintln(m.out, "\n==== Delete Task ====")
	idx, err := m.selectTask("\nEnter the task number to delete: ")
	if err != nil || idx < 0 {
		return err
	}
	cur, err := m.st.Get(idx)
	if err != nil {
		return err
	}
	confirm, err := m.ask(fmt.Sprintf("Are you sure you want to delete '%s'? (Yes/No): ", cur.Name))
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "yes") {
		fmt.Fprintln(m.out, "Deletion cancelled")
		return nil
	}
	removed, err := m.st.Delete(idx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Task '%s' deleted successfully!\n", removed.Name)
	return nil
}

func (m *menu) filter() error {
	fmt.Fprintln(m.out, "\n==== Filter Tasks ====\n(Press Enter to skip a filter)")
	name, err := m.ask("Name contains: ")
	if err != nil {
		return err
	}
	prio, err := m.askValid("Priority (High/Medium/Low/All): ", true, checkFilterPriority)
	if err != nil {
		return err
	}
	due, err := m.ask("Due date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	printTasks(m.out, numberAll(m.st, m.st.Filter(store.Criteria{Name: name, Priority: prio, DueDate: due})))
	return nil
}

func (m *menu) sort() error {
	fmt.Fprintln(m.out, "\n==== Sort Tasks ====")
	keyStr, err := m.askValid("Sort by (name/description/priority/due_date): ", false, func(s string) (string, error) {
		k, err := store.ParseSortKey(s)
		return string(k), err
	})
	if err != nil {
		return err
	}
	order, err := m.ask("Descending? (Yes/No): ")
	if err != nil {
		return err
	}
	if err := m.st.Sort(store.SortKey(keyStr), strings.EqualFold(order, "yes")); err != nil {
		return err
	}
	printTasks(m.out, numberAll(m.st, m.st.List()))
	return nil
}
