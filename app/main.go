package main

import (
	"errors"
	"io"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/taskman/app/cmd"
	"github.com/umputun/taskman/app/persistence"
)

// Opts with all cli commands and flags
type Opts struct {
	File   string `short:"f" long:"file" env:"TASKMAN_FILE" default:"tasks.json" description:"tasks file"`
	Format string `long:"format" env:"TASKMAN_FORMAT" default:"auto" choice:"auto" choice:"json" choice:"text" choice:"yaml" choice:"toml" choice:"sqlite" description:"tasks file format, auto detects by extension"`
	Dbg    bool   `long:"dbg" env:"TASKMAN_DEBUG" description:"debug mode"`

	Save struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"3" description:"how many times to try saving tasks"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"100ms" description:"initial delay between save attempts"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"2" description:"backoff factor"`
	} `group:"save" namespace:"save" env-namespace:"TASKMAN_SAVE"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"filename" env:"FILENAME" description:"log file, stderr if not set"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max size of log file in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of old log files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max days to retain old log files"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"TASKMAN_LOG"`

	AddCmd     cmd.AddCommand     `command:"add" description:"add a task"`
	ListCmd    cmd.ListCommand    `command:"list" description:"list all tasks"`
	UpdateCmd  cmd.UpdateCommand  `command:"update" description:"update a task by number"`
	DeleteCmd  cmd.DeleteCommand  `command:"delete" description:"delete a task by number"`
	FindCmd    cmd.FindCommand    `command:"find" description:"find tasks by name, priority or due date"`
	SortCmd    cmd.SortCommand    `command:"sort" description:"sort tasks and save the new order"`
	ConvertCmd cmd.ConvertCommand `command:"convert" description:"copy tasks between files and formats"`
	SchemaCmd  cmd.SchemaCommand  `command:"schema" description:"print JSON schema of the tasks file"`
	MenuCmd    cmd.MenuCommand    `command:"menu" description:"interactive menu, default without a command"`
	TUICmd     cmd.TUICommand     `command:"tui" description:"full-screen terminal interface"`
}

var opts Opts

var revision = "unknown"

func main() {
	p := flags.NewParser(&opts, flags.Default)
	p.SubcommandsOptional = true
	p.CommandHandler = handleCommand

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// handleCommand sets up logs and common options, then runs the command.
// Without a command it runs the interactive menu.
func handleCommand(command flags.Commander, args []string) error {
	setupLogs()
	log.Printf("[DEBUG] taskman %s", revision)

	c, ok := command.(cmd.CommonOptionsCommander)
	if !ok {
		c = &opts.MenuCmd
	}
	c.SetCommon(commonOpts())
	if err := c.Execute(args); err != nil {
		log.Printf("[ERROR] command failed, %v", err)
		return err
	}
	return nil
}

func commonOpts() cmd.CommonOpts {
	return cmd.CommonOpts{
		File:   opts.File,
		Format: persistence.Format(opts.Format),
		Repeater: repeater.New(&strategy.Backoff{Repeats: opts.Save.Attempts, Duration: opts.Save.Duration,
			Factor: opts.Save.Factor}),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// setupLogs configures lgr and returns the log destination. Logging is off unless enabled or in debug mode,
// as logs would mix with the command output otherwise.
func setupLogs() io.Writer {
	if !opts.Log.Enabled && !opts.Dbg {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return io.Discard
	}

	var out io.Writer = os.Stderr
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	logOpts := []log.Option{log.Msec, log.Out(out), log.Err(out)}
	if opts.Dbg {
		logOpts = append(logOpts, log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	log.Setup(logOpts...)
	return out
}
