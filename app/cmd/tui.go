package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/umputun/taskman/app/tui"
)

// TUICommand starts full-screen terminal interface
type TUICommand struct {
	NoAltScreen bool `long:"inline" description:"render inline instead of the alternate screen"`

	CommonOpts
}

// Execute is the entry point for "tui" command, called by flag parser
func (t *TUICommand) Execute(_ []string) error {
	st, done, err := t.openStore()
	if err != nil {
		return err
	}
	defer done()

	opts := []tea.ProgramOption{tea.WithInput(t.Stdin), tea.WithOutput(t.Stdout)}
	if !t.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tui.Run(st, opts...)
}
