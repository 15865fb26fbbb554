package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

var csvHeader = []string{"country", "url", "advisory_level", "country_standardized", "advisory_label"}

// WriteCSV persists the assembled dataset, one row per classified country.
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Country, r.URL, strconv.Itoa(r.Level), r.Standardized, r.Label}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row for %s: %w", r.Country, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}

// ReadCSV loads a previously written dataset. The open error is returned
// unwrapped so callers can detect a missing file.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	if !slices.Equal(rows[0], csvHeader) {
		return nil, fmt.Errorf("%s has unexpected header %q, want %q",
			path, strings.Join(rows[0], ","), strings.Join(csvHeader, ","))
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("%s row %d: expected 5 columns, got %d", path, i+2, len(row))
		}
		level, err := ParseLevel(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		records = append(records, Record{
			Country:      row[0],
			URL:          row[1],
			Level:        level,
			Standardized: row[3],
			Label:        row[4],
		})
	}
	return records, nil
}

// ParseLevel parses an advisory level code. Level columns written by other
// tooling may carry float formatting, so both "4" and "4.0" are accepted.
func ParseLevel(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid advisory level %q", s)
	}
	level := int(v)
	if float64(level) != v || level < 1 || level > 4 {
		return 0, fmt.Errorf("invalid advisory level %q", s)
	}
	return level, nil
}
