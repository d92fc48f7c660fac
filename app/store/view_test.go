package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/taskman/app/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{Name: "Pay rent", Description: "bank", Priority: task.PriorityHigh, DueDate: "2025-04-01"},
		{Name: "buy milk", Description: "Shop", Priority: task.PriorityLow, DueDate: "2025-03-15"},
		{Name: "Call plumber", Description: "asap", Priority: task.PriorityHigh, DueDate: "2025-03-15"},
		{Name: "Read book", Description: "", Priority: task.PriorityMedium, DueDate: "2025-05-20"},
	}
}

func TestFilter(t *testing.T) {
	tbl := []struct {
		name string
		c    Criteria
		res  []string
	}{
		{"defaults", Criteria{}, []string{"Pay rent", "buy milk", "Call plumber", "Read book"}},
		{"priority all", Criteria{Priority: "All"}, []string{"Pay rent", "buy milk", "Call plumber", "Read book"}},
		{"name case insensitive", Criteria{Name: "PAY"}, []string{"Pay rent"}},
		{"name substring", Criteria{Name: "l"}, []string{"buy milk", "Call plumber"}},
		{"priority exact", Criteria{Priority: "High"}, []string{"Pay rent", "Call plumber"}},
		{"priority case sensitive", Criteria{Priority: "high"}, []string{}},
		{"exact date", Criteria{DueDate: "2025-03-15"}, []string{"buy milk", "Call plumber"}},
		{"date not a range", Criteria{DueDate: "2025-03"}, []string{}},
		{"combined", Criteria{Name: "a", Priority: "High", DueDate: "2025-03-15"}, []string{"Call plumber"}},
		{"no match", Criteria{Name: "zzz"}, []string{}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			inp := sampleTasks()
			res := Filter(inp, tt.c)
			assert.Equal(t, tt.res, names(res))
			assert.Equal(t, sampleTasks(), inp, "input untouched")
		})
	}

	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{Priority: "All"}.IsZero())
	assert.False(t, Criteria{DueDate: "2025-01-01"}.IsZero())
}

func TestSort_Priority(t *testing.T) {
	inp := []task.Task{
		{Name: "low", Priority: task.PriorityLow},
		{Name: "high", Priority: task.PriorityHigh},
		{Name: "medium", Priority: task.PriorityMedium},
	}
	res, err := Sort(inp, SortByPriority, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "medium", "low"}, names(res))
	assert.Equal(t, []string{"low", "high", "medium"}, names(inp), "input untouched")

	res, err = Sort(inp, SortByPriority, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "medium", "high"}, names(res))
}

func TestSort_PriorityStableAndUnknown(t *testing.T) {
	inp := []task.Task{
		{Name: "h1", Priority: task.PriorityHigh},
		{Name: "x1", Priority: "Someday"},
		{Name: "l1", Priority: task.PriorityLow},
		{Name: "h2", Priority: task.PriorityHigh},
		{Name: "l2", Priority: task.PriorityLow},
		{Name: "h3", Priority: task.PriorityHigh},
	}
	res, err := Sort(inp, SortByPriority, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2", "h3", "l1", "l2", "x1"}, names(res))

	res, err = Sort(inp, SortByPriority, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "l1", "l2", "h1", "h2", "h3"}, names(res), "ties keep input order when reversed")
}

func TestSort_DueDate(t *testing.T) {
	res, err := Sort(sampleTasks(), SortByDueDate, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"buy milk", "Call plumber", "Pay rent", "Read book"}, names(res))

	res, err = Sort(sampleTasks(), SortByDueDate, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Read book", "Pay rent", "buy milk", "Call plumber"}, names(res))
}

func TestSort_DueDateStricterThanValidator(t *testing.T) {
	inp := append(sampleTasks(), task.Task{Name: "feb 30", Priority: task.PriorityLow, DueDate: "2025-02-30"})
	require.NoError(t, task.ValidateDueDate("2025-02-30"), "accepted on add")

	res, err := Sort(inp, SortByDueDate, false)
	require.Error(t, err, "rejected on sort")
	assert.Contains(t, err.Error(), "feb 30")
	assert.Nil(t, res)

	// other keys don't care about calendar validity
	_, err = Sort(inp, SortByName, false)
	require.NoError(t, err)
}

func TestSort_Name(t *testing.T) {
	res, err := Sort(sampleTasks(), SortByName, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"buy milk", "Call plumber", "Pay rent", "Read book"}, names(res))

	res, err = Sort(sampleTasks(), SortByName, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Read book", "Pay rent", "Call plumber", "buy milk"}, names(res))

	res, err = Sort(sampleTasks(), SortByDescription, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Read book", "Call plumber", "Pay rent", "buy milk"}, names(res))
}

func TestSort_Empty(t *testing.T) {
	for _, k := range SortKeys {
		res, err := Sort(nil, k, false)
		require.NoError(t, err)
		assert.Empty(t, res)
	}
}

func TestSort_UnknownKey(t *testing.T) {
	_, err := Sort(sampleTasks(), "color", false)
	require.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("Due_Date")
	require.NoError(t, err)
	assert.Equal(t, SortByDueDate, k)
	k, err = ParseSortKey("name")
	require.NoError(t, err)
	assert.Equal(t, SortByName, k)
	_, err = ParseSortKey("id")
	require.ErrorIs(t, err, ErrUnknownSortKey)
}
