package mapper

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"
)

// Schematic writes the table, key and columns of m as a text table.
func (m *Mapper[T]) Schematic(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Table: %s\n", m.table); err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Column", "Qualified", "Is Key"})
	for i, f := range m.fields {
		tw.AppendRow(table.Row{i + 1, f, m.qualify(f), f == m.key})
	}
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
