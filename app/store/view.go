package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/umputun/taskman/app/task"
)

// ErrUnknownSortKey returned for a sort key not naming a task field
var ErrUnknownSortKey = errors.New("unknown sort key")

// Criteria for Filter. Zero value matches everything.
type Criteria struct {
	Name     string // case-insensitive substring of name
	Priority string // exact priority, empty or "All" matches any
	DueDate  string // exact due date string
}

// IsZero reports whether the criteria match every task
func (c Criteria) IsZero() bool {
	return c.Name == "" && (c.Priority == "" || c.Priority == task.PriorityAll) && c.DueDate == ""
}

// Filter returns a new slice with tasks matching all criteria, in input order
func Filter(tasks []task.Task, c Criteria) []task.Task {
	nameLower := strings.ToLower(c.Name)
	res := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Name != "" && !strings.Contains(strings.ToLower(t.Name), nameLower) {
			continue
		}
		if c.Priority != "" && c.Priority != task.PriorityAll && string(t.Priority) != c.Priority {
			continue
		}
		if c.DueDate != "" && t.DueDate != c.DueDate {
			continue
		}
		res = append(res, t)
	}
	return res
}

// SortKey names the task field to sort by
type SortKey string

// supported sort keys
const (
	SortByName        SortKey = "name"
	SortByDescription SortKey = "description"
	SortByPriority    SortKey = "priority"
	SortByDueDate     SortKey = "due_date"
)

// SortKeys lists all supported keys, in display order
var SortKeys = []SortKey{SortByName, SortByDescription, SortByPriority, SortByDueDate}

// ParseSortKey converts a field name to SortKey
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == strings.ToLower(s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownSortKey, s)
}

// Sort returns a sorted copy of tasks. The sort is stable in both directions, tasks with
// equal keys keep their input order. Sorting by due date requires every due date to be
// a real calendar date, otherwise an error is returned.
func Sort(tasks []task.Task, key SortKey, reverse bool) ([]task.Task, error) {
	res := make([]task.Task, len(tasks))
	copy(res, tasks)

	var less func(i, j int) bool
	switch key {
	case SortByPriority:
		less = func(i, j int) bool { return res[i].Priority.Rank() < res[j].Priority.Rank() }
	case SortByDueDate:
		dates := make(map[string]time.Time, len(res))
		for _, t := range res {
			d, err := task.ParseDueDate(t.DueDate)
			if err != nil {
				return nil, fmt.Errorf("can't sort by due date, task %q: %w", t.Name, err)
			}
			dates[t.DueDate] = d
		}
		less = func(i, j int) bool { return dates[res[i].DueDate].Before(dates[res[j].DueDate]) }
	case SortByName:
		less = func(i, j int) bool { return strings.ToLower(res[i].Name) < strings.ToLower(res[j].Name) }
	case SortByDescription:
		less = func(i, j int) bool { return strings.ToLower(res[i].Description) < strings.ToLower(res[j].Description) }
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSortKey, key)
	}

	if reverse {
		sort.SliceStable(res, func(i, j int) bool { return less(j, i) })
		return res, nil
	}
	sort.SliceStable(res, less)
	return res, nil
}
