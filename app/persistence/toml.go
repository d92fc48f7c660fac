package persistence

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/umputun/taskman/app/task"
)

// TOML is a tasks file with one [[task]] table per task
type TOML struct {
	path string
}

type tomlDoc struct {
	Tasks []task.Task `toml:"task"`
}

// NewTOML makes TOML file backend for path
func NewTOML(path string) *TOML {
	return &TOML{path: path}
}

// Load reads and decodes the file, keys not mapped to task fields are rejected
func (t *TOML) Load() ([]task.Task, error) {
	data, err := readFile(t.path)
	if err != nil {
		return nil, err
	}

	var doc tomlDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, t.path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w %s: unknown keys %v", ErrMalformed, t.path, undecoded)
	}
	return nonNil(doc.Tasks), nil
}

// Save writes all tasks as an array of tables
func (t *TOML) Save(tasks []task.Task) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDoc{Tasks: nonNil(tasks)}); err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return writeFile(t.path, buf.Bytes())
}

func (t *TOML) String() string {
	return t.path
}
