// Package tables extracts HTML tables into rectangular rows of cell text.
package tables

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is one HTML table. The first row of the source table becomes Header;
// every entry of Rows has len(Header) cells, padded with "" where the source
// row is short.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the first header cell equal to name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column, or nil if the table lacks it.
func (t Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// Parse returns every table found in html, in document order.
func Parse(html string) ([]Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument returns every table in doc. Tables without any row are skipped.
func FromDocument(doc *goquery.Document) []Table {
	var tables []Table
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		grid := expandRows(tableRows(sel))
		if len(grid) == 0 {
			return
		}
		tables = append(tables, newTable(grid))
	})
	return tables
}

// tableRows returns the rows that belong to table itself, skipping rows of nested tables.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "tr":
			rows = append(rows, child)
		case "thead", "tbody", "tfoot":
			child.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
				rows = append(rows, tr)
			})
		}
	})
	return rows
}

// pendingCell is a cell carried into following rows by rowspan.
type pendingCell struct {
	text string
	left int
}

// expandRows flattens colspan and rowspan so each cell occupies its own column.
func expandRows(rows []*goquery.Selection) [][]string {
	grid := make([][]string, 0, len(rows))
	pending := make(map[int]*pendingCell)

	for _, tr := range rows {
		var row []string
		col := 0

		takePending := func() bool {
			p, ok := pending[col]
			if !ok {
				return false
			}
			row = append(row, p.text)
			p.left--
			if p.left == 0 {
				delete(pending, col)
			}
			col++
			return true
		}

		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			for takePending() {
			}
			text := CellText(cell)
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			for k := 0; k < colspan; k++ {
				row = append(row, text)
				if rowspan > 1 {
					pending[col] = &pendingCell{text: text, left: rowspan - 1}
				}
				col++
			}
		})

		// Cells spanning into columns after the last real cell of this row
		for _, c := range pendingColumns(pending, col) {
			for col < c {
				row = append(row, "")
				col++
			}
			takePending()
		}

		if len(row) > 0 {
			grid = append(grid, row)
		}
	}
	return grid
}

func pendingColumns(pending map[int]*pendingCell, from int) []int {
	var cols []int
	for c := range pending {
		if c >= from {
			cols = append(cols, c)
		}
	}
	sort.Ints(cols)
	return cols
}

func newTable(grid [][]string) Table {
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}

	t := Table{
		Header: padRow(grid[0], width),
		Rows:   make([][]string, 0, len(grid)-1),
	}
	for _, row := range grid[1:] {
		t.Rows = append(t.Rows, padRow(row, width))
	}
	return t
}

func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// spanAttr reads a colspan/rowspan attribute, defaulting to 1 for missing or invalid values.
func spanAttr(cell *goquery.Selection, name string) int {
	raw, ok := cell.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// CellText returns the text of a cell with runs of whitespace collapsed to one space.
func CellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(cell.Text()), " ")
}
