package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/umputun/taskman/app/task"
)

// YAML is a tasks file holding a sequence of task mappings
type YAML struct {
	path string
}

// NewYAML makes YAML file backend for path
func NewYAML(path string) *YAML {
	return &YAML{path: path}
}

// Load reads and decodes the file, unknown keys are rejected. An empty document is an empty list.
func (y *YAML) Load() ([]task.Task, error) {
	data, err := readFile(y.path)
	if err != nil {
		return nil, err
	}

	tasks := []task.Task{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tasks); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, y.path, err)
	}
	return tasks, nil
}

// Save writes all tasks as YAML sequence
func (y *YAML) Save(tasks []task.Task) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(tasks)); err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return writeFile(y.path, buf.Bytes())
}

func (y *YAML) String() string {
	return y.path
}
