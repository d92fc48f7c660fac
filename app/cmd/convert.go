package cmd

import (
	"fmt"
	"io"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/taskman/app/persistence"
)

// ConvertCommand set of flags and command for convert, copies tasks from one file to another,
// possibly in a different format. Unlike other commands a file which can't be read is an error here.
type ConvertCommand struct {
	From       string `long:"from" required:"true" description:"source tasks file"`
	FromFormat string `long:"from-format" default:"auto" choice:"auto" choice:"json" choice:"text" choice:"yaml" choice:"toml" choice:"sqlite" description:"source format"`
	To         string `long:"to" required:"true" description:"destination tasks file, overwritten"`
	ToFormat   string `long:"to-format" default:"auto" choice:"auto" choice:"json" choice:"text" choice:"yaml" choice:"toml" choice:"sqlite" description:"destination format"`
	CommonOpts
}

// Execute is the entry point for "convert" command, called by flag parser
func (c *ConvertCommand) Execute(_ []string) error {
	src, err := persistence.New(c.From, persistence.Format(c.FromFormat))
	if err != nil {
		return err
	}
	defer closeFile(src)
	dst, err := persistence.New(c.To, persistence.Format(c.ToFormat))
	if err != nil {
		return err
	}
	defer closeFile(dst)

	tasks, err := src.Load()
	if err != nil {
		return fmt.Errorf("can't read %s: %w", src, err)
	}
	if err := dst.Save(tasks); err != nil {
		return fmt.Errorf("can't write %s: %w", dst, err)
	}
	log.Printf("[INFO] converted %d tasks from %s to %s", len(tasks), src, dst)
	fmt.Fprintf(c.Stdout, "Converted %d tasks from %s to %s\n", len(tasks), src, dst)
	return nil
}

func closeFile(f persistence.File) {
	if closer, ok := f.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("[WARN] can't close %s: %v", f, err)
		}
	}
}
