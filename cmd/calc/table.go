package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the operator priority table",
		Long: `table prints the relation between the operator on top of the stack
(rows) and the incoming operator (columns). < shifts the incoming operator,
> reduces the top, = pairs parentheses or finishes, and blank is an error.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), priorityTable())
		},
	}
}

func priorityTable() string {
	ops := calc.Operators()
	rows := make([]string, 0, len(ops)+1)
	head := []string{cellStyle.Render("")}
	for _, in := range ops {
		head = append(head, headerStyle.Render(in.String()))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, head...))
	for _, top := range ops {
		row := []string{headerStyle.Render(top.String())}
		for _, in := range ops {
			r := calc.Priority(top, in)
			row = append(row, relationStyle(r).Render(r.String()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return tableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
