package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/umputun/taskman/app/task"
)

// ErrMalformed wraps decoding failures of a tasks file
var ErrMalformed = errors.New("malformed tasks file")

// Format of a tasks file
type Format string

// supported formats
const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatSQLite Format = "sqlite"
)

// File is a tasks file in one of the supported formats
type File interface {
	Load() ([]task.Task, error)
	Save(tasks []task.Task) error
	String() string
}

// DetectFormat picks format by file extension, JSON for anything unknown
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return FormatText
	case ".yml", ".yaml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// New makes a File for path. FormatAuto (or empty) detects format by extension.
func New(path string, format Format) (File, error) {
	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}
	switch format {
	case FormatJSON:
		return NewJSON(path), nil
	case FormatText:
		return NewText(path), nil
	case FormatYAML:
		return NewYAML(path), nil
	case FormatTOML:
		return NewTOML(path), nil
	case FormatSQLite:
		return NewSQLite(path)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// readFile reads the whole file, missing file error wraps fs.ErrNotExist
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // nolint gosec
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeFile replaces file content with data
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// nonNil makes sure encoders get an empty list rather than null
func nonNil(tasks []task.Task) []task.Task {
	if tasks == nil {
		return []task.Task{}
	}
	return tasks
}
