// Package cmd has all user-facing commands. Each command gets CommonOpts from main
// and opens the tasks store on its own, so commands not touching tasks never read the file.
package cmd

import (
	"fmt"
	"io"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/taskman/app/persistence"
	"github.com/umputun/taskman/app/store"
	"github.com/umputun/taskman/app/task"
)

// CommonOptionsCommander extends flags.Commander with SetCommon.
// All commands should implement this interface.
type CommonOptionsCommander interface {
	SetCommon(commonOpts CommonOpts)
	Execute(args []string) error
}

// CommonOpts sets externally from main, shared across all commands
type CommonOpts struct {
	File     string
	Format   persistence.Format
	Repeater store.Repeater
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// SetCommon satisfies CommonOptionsCommander interface and sets common option fields
// The method called by main for each command
func (c *CommonOpts) SetCommon(commonOpts CommonOpts) {
	*c = commonOpts
}

// openStore makes the store for tasks file and loads it. A load failure is reported to stderr
// and the store starts empty, the returned error is only for a file which can't be used at all.
// The returned func releases the file and must be called when done.
func (c *CommonOpts) openStore() (*store.Store, func(), error) {
	f, err := persistence.New(c.File, c.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("can't open tasks file %s: %w", c.File, err)
	}
	done := func() { closeFile(f) }

	st := store.New(f, c.Repeater)
	if err := st.Load(); err != nil {
		log.Printf("[WARN] %v", err)
		fmt.Fprintf(c.Stderr, "Error loading tasks from %s: %v\nStarting with an empty task list.\n", st, err)
	}
	return st, done, nil
}

// numbered is a task with its 1-based position in the store
type numbered struct {
	num int
	task.Task
}

// numberAll numbers tasks by their position in the store
func numberAll(st *store.Store, tasks []task.Task) []numbered {
	res := make([]numbered, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, numbered{num: st.IndexOf(t.ID) + 1, Task: t})
	}
	return res
}

// parseNumber converts 1-based task number to store index
func parseNumber(s string, total int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q", s)
	}
	if n < 1 || n > total {
		return 0, fmt.Errorf("%w: enter a number between 1 and %d", store.ErrIndexOutOfRange, total)
	}
	return n - 1, nil
}
