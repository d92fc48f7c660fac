package persistence

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/taskman/app/task"
)

// labels of the legacy text format
const (
	labelName        = "Name:"
	labelDescription = "Description:"
	labelPriority    = "Priority:"
	labelDueDate     = "Due Date:"
	textDelimiter    = "-----"
)

// Text is the legacy flat text tasks file. Each task is a block of four "Label: value"
// lines followed by a "-----" line:
//
//	Name: Pay rent
//	Description: bank transfer
//	Priority: High
//	Due Date: 2025-04-01
//	-----
//
// Fields are picked by label, blank lines, unknown lines and surrounding spaces are ignored.
// Values are single line, new lines in a description are stored as spaces.
type Text struct {
	path string
}

// NewText makes legacy text backend for path
func NewText(path string) *Text {
	return &Text{path: path}
}

// Load reads all task blocks. A trailing block without delimiter is kept.
func (t *Text) Load() ([]task.Task, error) {
	data, err := readFile(t.path)
	if err != nil {
		return nil, err
	}

	res := []task.Task{}
	var cur task.Task
	started := false
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == textDelimiter {
			if started {
				res = append(res, cur)
			}
			cur, started = task.Task{}, false
			continue
		}
		switch {
		case strings.HasPrefix(line, labelName):
			cur.Name = strings.TrimSpace(strings.TrimPrefix(line, labelName))
		case strings.HasPrefix(line, labelDescription):
			cur.Description = strings.TrimSpace(strings.TrimPrefix(line, labelDescription))
		case strings.HasPrefix(line, labelPriority):
			cur.Priority = task.Priority(strings.TrimSpace(strings.TrimPrefix(line, labelPriority)))
		case strings.HasPrefix(line, labelDueDate):
			cur.DueDate = strings.TrimSpace(strings.TrimPrefix(line, labelDueDate))
		default:
			log.Printf("[WARN] skip unexpected line %d in %s: %q", lineNum, t.path, line)
			continue
		}
		started = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, t.path, err)
	}
	if started {
		res = append(res, cur)
	}
	return res, nil
}

// Save writes all tasks as delimited blocks
func (t *Text) Save(tasks []task.Task) error {
	var buf bytes.Buffer
	for _, tsk := range tasks {
		fmt.Fprintf(&buf, "%s %s\n", labelName, oneLine(tsk.Name))
		fmt.Fprintf(&buf, "%s %s\n", labelDescription, oneLine(tsk.Description))
		fmt.Fprintf(&buf, "%s %s\n", labelPriority, oneLine(string(tsk.Priority)))
		fmt.Fprintf(&buf, "%s %s\n", labelDueDate, oneLine(tsk.DueDate))
		buf.WriteString(textDelimiter + "\n")
	}
	return writeFile(t.path, buf.Bytes())
}

func (t *Text) String() string {
	return t.path
}

func oneLine(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s))
}
