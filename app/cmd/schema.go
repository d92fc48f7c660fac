package cmd

import (
	"fmt"
	"os"

	"github.com/umputun/taskman/app/persistence"
)

// SchemaCommand set of flags and command for schema, prints JSON schema of the tasks file
type SchemaCommand struct {
	Output string `short:"o" long:"output" description:"write schema to file instead of stdout"`
	CommonOpts
}

// Execute is the entry point for "schema" command, called by flag parser
func (s *SchemaCommand) Execute(_ []string) error {
	data, err := persistence.SchemaJSON()
	if err != nil {
		return err
	}
	if s.Output == "" {
		_, err = s.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(s.Output, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	fmt.Fprintf(s.Stdout, "Schema generated successfully at %s\n", s.Output)
	return nil
}
