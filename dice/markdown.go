package dice

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var ErrShapeMismatch = errors.New("names do not match table shape")

// ToMarkdown renders a table with a blank corner cell, one header cell per
// column and the row name leading each row. Missing names default to
// "Col i" and "Row i".
func ToMarkdown[T any](rows [][]T, columnNames, rowNames []string) (string, error) {
	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return "", fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
	}

	if columnNames == nil {
		columnNames = make([]string, cols)
		for i := range columnNames {
			columnNames[i] = fmt.Sprintf("Col %d", i)
		}
	}
	if len(columnNames) != cols {
		return "", fmt.Errorf("%d column names for %d columns: %w", len(columnNames), cols, ErrShapeMismatch)
	}

	if rowNames == nil {
		rowNames = make([]string, len(rows))
		for i := range rowNames {
			rowNames[i] = fmt.Sprintf("Row %d", i)
		}
	}
	if len(rowNames) != len(rows) {
		return "", fmt.Errorf("%d row names for %d rows: %w", len(rowNames), len(rows), ErrShapeMismatch)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "| "+" | "+strings.Join(columnNames, " | ")+" |")

	separator := make([]string, cols+1)
	for i := range separator {
		separator[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(separator, " | ")+" |")

	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		lines = append(lines, "| "+rowNames[i]+"| "+strings.Join(cells, " | ")+" |")
	}

	return strings.Join(lines, "\n"), nil
}

// PrettyPrint renders the dice table as markdown.
func PrettyPrint() string {
	md, err := ToMarkdown(Rows(), ColumnNames(), RowNames())
	if err != nil {
		// the names are built from the table dimensions
		panic(err)
	}
	return md
}

// ToHTML renders markdown, tables included, as HTML.
func ToHTML(markdown string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("could not render markdown: %w", err)
	}
	return buf.String(), nil
}
