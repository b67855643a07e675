// Package render draws entity batches and the dependency graph as ASCII
// for the CLI preview surfaces.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/storegen/internal/record"
	"github.com/dbsmedya/storegen/internal/serializer"
)

const maxCellWidth = 36

// Table renders a batch as an ASCII table: header row from the first
// record's field order, one row per record. Wide cells are truncated.
// Widths are computed with runewidth so non-ASCII values from the value
// synthesizer line up.
func Table(batch *record.Batch, maxRows int) (string, error) {
	if batch.Len() == 0 {
		return "(empty batch)\n", nil
	}

	header := batch.Records[0].Fields()
	rows := make([][]string, 0, batch.Len())
	for i, rec := range batch.Records {
		if maxRows > 0 && i >= maxRows {
			break
		}
		row := make([]string, len(header))
		for j, field := range header {
			value, _ := rec.Get(field)
			cell, err := serializer.CellString(value)
			if err != nil {
				return "", err
			}
			row[j] = runewidth.Truncate(cell, maxCellWidth, "…")
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeSeparator(&b, widths)
	writeRow(&b, header, widths)
	writeSeparator(&b, widths)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	writeSeparator(&b, widths)

	if maxRows > 0 && batch.Len() > maxRows {
		fmt.Fprintf(&b, "(%d of %d records shown)\n", maxRows, batch.Len())
	}
	return b.String(), nil
}

func writeSeparator(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
		b.WriteByte(' ')
	}
	b.WriteString("|\n")
}
