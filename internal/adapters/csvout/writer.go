// Package csvout writes flattened rows to a fixed-header CSV file.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// Filename builds the output filename from a stem, optionally suffixed
// with the run date, e.g. "lol_data_20260828_1405.csv".
func Filename(stem string, dateSuffix bool, now time.Time) string {
	if dateSuffix {
		return fmt.Sprintf("%s_%s.csv", stem, now.Format("20060102_1504"))
	}
	return stem + ".csv"
}

// Write creates path and writes the header followed by every record.
// Records must already match the header's column count; empty cells stand
// in for absent values.
func Write(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
