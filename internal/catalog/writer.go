package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
)

// OutputColumns is the result table header, in writing order.
var OutputColumns = []string{"file_name", "local_path", "title", "description", "tags"}

// ResultRecord is one persisted listing row. Records exist only for rows
// whose image was generated and saved.
type ResultRecord struct {
	FileName    string
	LocalPath   string
	Title       string
	Description string
	Tags        string
}

// WriteResults writes records as CSV at path. The header is always written,
// so an all-skipped batch still produces a parseable file. Output is
// deterministic: the same records yield byte-identical files.
func WriteResults(path string, records []ResultRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(OutputColumns); err != nil {
		f.Close()
		return fmt.Errorf("write output header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.FileName, rec.LocalPath, rec.Title, rec.Description, rec.Tags}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write output row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output file: %w", err)
	}
	return f.Close()
}
