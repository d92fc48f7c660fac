package cmd

import (
	"fmt"

	"github.com/umputun/taskman/app/store"
)

// ListCommand set of flags and command for list
type ListCommand struct {
	CommonOpts
}

// Execute is the entry point for "list" command, called by flag parser
func (l *ListCommand) Execute(_ []string) error {
	st, done, err := l.openStore()
	if err != nil {
		return err
	}
	defer done()
	printTasks(l.Stdout, numberAll(st, st.List()))
	return nil
}

// FindCommand set of flags and command for find
type FindCommand struct {
	Name     string `short:"n" long:"name" description:"part of the name, case-insensitive"`
	Priority string `short:"p" long:"priority" default:"All" choice:"All" choice:"High" choice:"Medium" choice:"Low" description:"priority"`
	DueDate  string `short:"t" long:"due" description:"exact due date, YYYY-MM-DD"`
	CommonOpts
}

// Execute is the entry point for "find" command, called by flag parser
func (f *FindCommand) Execute(_ []string) error {
	st, done, err := f.openStore()
	if err != nil {
		return err
	}
	defer done()
	printTasks(f.Stdout, numberAll(st, st.Filter(store.Criteria{Name: f.Name, Priority: f.Priority, DueDate: f.DueDate})))
	return nil
}

// SortCommand set of flags and command for sort
type SortCommand struct {
	Reverse bool `short:"r" long:"reverse" description:"descending order"`
	Args    struct {
		Key string `positional-arg-name:"KEY" description:"name, description, priority or due_date"`
	} `positional-args:"yes" required:"yes"`
	CommonOpts
}

// Execute is the entry point for "sort" command, called by flag parser.
// The new order is saved to the tasks file.
func (s *SortCommand) Execute(_ []string) error {
	key, err := store.ParseSortKey(s.Args.Key)
	if err != nil {
		return err
	}
	st, done, err := s.openStore()
	if err != nil {
		return err
	}
	defer done()

	if err := st.Sort(key, s.Reverse); err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}
	printTasks(s.Stdout, numberAll(st, st.List()))
	return nil
}
