package series

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

// cacheHeader names each column exactly as in the data model.
var cacheHeader = []string{"country_code", "country_name", "region", "year", "rate"}

// LoadCache reads the flat CSV cache file. A missing file is not an error:
// it returns (nil, false, nil) and the caller falls back to a live fetch.
func LoadCache(path string) ([]domain.Record, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: failed to open cache file: %v", domain.ErrDataUnavailable, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to parse cache file: %v", domain.ErrDataUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, true, nil
	}

	// Skip the header row; tolerate a headerless file written by hand.
	start := 0
	if rows[0][0] == cacheHeader[0] {
		start = 1
	}

	records := make([]domain.Record, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if len(row) != len(cacheHeader) {
			return nil, false, fmt.Errorf("%w: cache row has %d columns, want %d", domain.ErrDataUnavailable, len(row), len(cacheHeader))
		}

		year, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, false, fmt.Errorf("%w: bad year %q in cache file", domain.ErrDataUnavailable, row[3])
		}
		rate, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, false, fmt.Errorf("%w: bad rate %q in cache file", domain.ErrDataUnavailable, row[4])
		}

		records = append(records, domain.Record{
			CountryCode: row[0],
			CountryName: row[1],
			Region:      row[2],
			Year:        year,
			Rate:        rate,
		})
	}

	return records, true, nil
}

// SaveCache writes the records to the cache file. The write goes to a temp
// file first and renames over the target, so a crash mid-write never leaves a
// truncated cache behind.
func SaveCache(path string, records []domain.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".cache-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(cacheHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.CountryCode,
			rec.CountryName,
			rec.Region,
			strconv.Itoa(rec.Year),
			strconv.FormatFloat(rec.Rate, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write cache row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	return nil
}
