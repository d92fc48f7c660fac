package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// printTasks renders tasks as a table, or a short note if there are none
func printTasks(w io.Writer, tasks []numbered) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{strconv.Itoa(t.num), t.Name, t.Description, string(t.Priority), t.DueDate})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "DESCRIPTION", "PRIORITY", "DUE DATE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, tbl.Render())
}
