// Package export persists the phrase dataset as a flat spreadsheet.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/latin-phrases/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultFileName is the spreadsheet written when no path is configured.
	DefaultFileName = "frases_latinas_completas.xlsx"
	// DefaultSheet is the name of the single worksheet.
	DefaultSheet = "Sheet1"

	columnWidth = 60
)

// header is the first row of every exported sheet.
var header = []string{types.ColumnLatin, types.ColumnTranslation}

// WriteXLSX writes table to path as a single-sheet workbook: one bold header
// row followed by one row per phrase, without an index column. Parent
// directories are created as needed and an existing file is overwritten.
func WriteXLSX(path, sheet string, table *types.PhraseTable) error {
	if path == "" {
		return &Error{Path: path, Message: "output path is empty"}
	}
	if sheet == "" {
		sheet = DefaultSheet
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &Error{Path: path, Message: "failed to create output directory", Cause: err}
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return &Error{Path: path, Message: fmt.Sprintf("invalid sheet name %q", sheet), Cause: err}
		}
	}

	if err := writeRows(f, sheet, table); err != nil {
		return &Error{Path: path, Message: "failed to write rows", Cause: err}
	}

	if err := f.SaveAs(path); err != nil {
		return &Error{Path: path, Message: "failed to save workbook", Cause: err}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, table *types.PhraseTable) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetColWidth(1, len(header), columnWidth); err != nil {
		return err
	}

	headerRow := make([]interface{}, len(header))
	for i, name := range header {
		headerRow[i] = excelize.Cell{StyleID: bold, Value: name}
	}
	if err := sw.SetRow("A1", headerRow); err != nil {
		return err
	}

	for i, phrase := range phrasesOf(table) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{phrase.Latin, phrase.Translation}); err != nil {
			return err
		}
	}

	return sw.Flush()
}

func phrasesOf(table *types.PhraseTable) []types.Phrase {
	if table == nil {
		return nil
	}
	return table.Phrases
}

// ReadXLSX loads a workbook written by WriteXLSX. When sheet is empty the
// first worksheet is used. Columns are located by header name; rows with a
// blank Latin or Translation cell are skipped.
func ReadXLSX(path, sheet string) (*types.PhraseTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to open workbook", Cause: err}
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &Error{Path: path, Message: "workbook has no sheets"}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &Error{Path: path, Message: fmt.Sprintf("failed to read sheet %q", sheet), Cause: err}
	}
	if len(rows) == 0 {
		return nil, &Error{Path: path, Message: fmt.Sprintf("sheet %q is empty", sheet)}
	}

	li, ti := indexOf(rows[0], types.ColumnLatin), indexOf(rows[0], types.ColumnTranslation)
	if li < 0 || ti < 0 {
		return nil, &Error{Path: path, Message: fmt.Sprintf("sheet %q lacks %q or %q header", sheet, types.ColumnLatin, types.ColumnTranslation)}
	}

	table := &types.PhraseTable{Phrases: make([]types.Phrase, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		latin, translation := cellAt(row, li), cellAt(row, ti)
		if latin == "" || translation == "" {
			continue
		}
		table.Phrases = append(table.Phrases, types.Phrase{Latin: latin, Translation: translation})
	}
	return table, nil
}

func indexOf(row []string, name string) int {
	for i, v := range row {
		if v == name {
			return i
		}
	}
	return -1
}

// cellAt tolerates the short rows GetRows returns when trailing cells are empty.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
