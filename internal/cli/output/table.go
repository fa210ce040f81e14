package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders rows under headers: a rounded box table in text mode and a
// markdown table otherwise. Cells may already carry styling.
func (r *Renderer) Table(headers []string, rows [][]string) {
	t := table.NewWriter()

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, row := range rows {
		cells := make(table.Row, len(row))
		for i, c := range row {
			cells[i] = c
		}
		t.AppendRow(cells)
	}

	if r.EffectiveMode() == ModeText {
		t.SetStyle(table.StyleRounded)
		r.Println(t.Render())
		return
	}
	r.Println(t.RenderMarkdown())
}
