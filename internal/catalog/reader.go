// Package catalog handles the batch's file plumbing: locating and reading
// the input theme table, and writing the listing results table.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RequiredColumn is the one input header every batch needs. Other columns
// pass through unread.
const RequiredColumn = "details"

// Row is one input record: its position in the file and the theme text.
// The position doubles as the row identity, so image files keep their
// input-order numbering even when later rows are skipped.
type Row struct {
	Index int
	Theme string
}

// ReadInput parses the CSV at path and returns the themed rows in file order.
func ReadInput(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == RequiredColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("input file %s has no %q column", path, RequiredColumn)
	}

	var rows []Row
	for idx := 0; ; idx++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input row %d: %w", idx, err)
		}
		rows = append(rows, Row{Index: idx, Theme: record[col]})
	}

	return rows, nil
}
