package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintKeyValueTable renders two-column rows under the given headers.
// Used by `config show --output table` to list resolved settings.
func PrintKeyValueTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.AppendBulk(rows)
	table.Render()
}
