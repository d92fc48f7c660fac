package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/umputun/taskman/app/task"
)

// JSON is a tasks file holding an array of task objects
type JSON struct {
	path string
}

// NewJSON makes JSON file backend for path
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Load reads and decodes the file. The document must match the tasks file schema.
func (j *JSON) Load() ([]task.Task, error) {
	data, err := readFile(j.path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, j.path, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, j.path, err)
	}

	tasks := []task.Task{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, j.path, err)
	}
	return tasks, nil
}

// Save writes all tasks, indented with 4 spaces and with a trailing newline
func (j *JSON) Save(tasks []task.Task) error {
	data, err := json.MarshalIndent(nonNil(tasks), "", "    ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return writeFile(j.path, append(data, '\n'))
}

func (j *JSON) String() string {
	return j.path
}
