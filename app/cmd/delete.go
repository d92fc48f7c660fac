package cmd

import (
	"bufio"
	"fmt"
	"strings"
)

// DeleteCommand set of flags and command for delete
type DeleteCommand struct {
	Yes  bool `short:"y" long:"yes" description:"don't ask for confirmation"`
	Args struct {
		Number string `positional-arg-name:"NUMBER" description:"task number as shown by list"`
	} `positional-args:"yes" required:"yes"`
	CommonOpts
}

// Execute is the entry point for "delete" command, called by flag parser
func (d *DeleteCommand) Execute(_ []string) error {
	st, done, err := d.openStore()
	if err != nil {
		return err
	}
	defer done()

	idx, err := parseNumber(d.Args.Number, st.Len())
	if err != nil {
		return err
	}
	t, err := st.Get(idx)
	if err != nil {
		return err
	}

	if !d.Yes {
		fmt.Fprintf(d.Stdout, "Are you sure you want to delete '%s'? (Yes/No): ", t.Name)
		scanner := bufio.NewScanner(d.Stdin)
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "yes") {
			fmt.Fprintln(d.Stdout, "Deletion cancelled")
			return nil
		}
	}

	removed, err := st.Delete(idx)
	if err != nil {
		return fmt.Errorf("can't delete task #%d: %w", idx+1, err)
	}
	fmt.Fprintf(d.Stdout, "Task '%s' deleted successfully\n", removed.Name)
	return nil
}
