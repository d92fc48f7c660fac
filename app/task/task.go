// Package task defines the to-do record and the rules for accepting its fields.
package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Priority of a task. Valid values are High, Medium and Low.
type Priority string

// known priorities
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// PriorityAll is the filter value matching any priority
const PriorityAll = "All"

// DateLayout is the due date format, YYYY-MM-DD
const DateLayout = "2006-01-02"

// validation errors
var (
	ErrEmptyName       = errors.New("task name is required")
	ErrInvalidPriority = errors.New("invalid priority, expected High, Medium or Low")
	ErrInvalidDueDate  = errors.New("invalid due date, expected YYYY-MM-DD")
)

// Task is a single to-do item. ID is assigned in memory and never persisted.
type Task struct {
	ID          string   `json:"-" yaml:"-" toml:"-"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Priority    Priority `json:"priority" yaml:"priority" toml:"priority"`
	DueDate     string   `json:"due_date" yaml:"due_date" toml:"due_date"`
}

func (t Task) String() string {
	return fmt.Sprintf("%s (%s, due %s)", t.Name, t.Priority, t.DueDate)
}

// Same reports whether two tasks carry the same fields, ignoring in-memory ID
func (t Task) Same(other Task) bool {
	t.ID, other.ID = "", ""
	return t == other
}

// Rank returns sorting rank of the priority, High=0, Medium=1, Low=2 and 3 for anything else
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ValidatePriority capitalizes s and accepts it if it is one of the known priorities
func ValidatePriority(s string) (Priority, error) {
	p := Priority(capitalize(s))
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// ValidateDueDate checks YYYY-MM-DD shape with month in 1..12 and day in 1..31.
// Month length and leap years are not checked, 2025-02-30 passes.
func ValidateDueDate(s string) error {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	if _, err := strconv.Atoi(s[0:4]); err != nil {
		return fmt.Errorf("%w: %q, bad year", ErrInvalidDueDate, s)
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("%w: %q, bad month", ErrInvalidDueDate, s)
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil || day < 1 || day > 31 {
		return fmt.Errorf("%w: %q, bad day", ErrInvalidDueDate, s)
	}
	return nil
}

// ParseDueDate parses s as a real calendar date, stricter than ValidateDueDate
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Normalize returns a copy of t with trimmed name and canonical priority,
// or an error if any field is not acceptable.
func Normalize(t Task) (Task, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Task{}, ErrEmptyName
	}
	p, err := ValidatePriority(string(t.Priority))
	if err != nil {
		return Task{}, err
	}
	t.Priority = p
	if err := ValidateDueDate(t.DueDate); err != nil {
		return Task{}, err
	}
	return t, nil
}

// capitalize makes the first letter upper case and the rest lower case
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
