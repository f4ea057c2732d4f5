// Package export serializes analytics output to flat text formats: CSV for
// tabular data and plain text for insight sequences. Floats are written with
// strconv's shortest round-trippable form so an exported file reloads to the
// exact same values.
package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/compare"
)

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RecordsCSV writes full records with the same columns as the cache file.
func RecordsCSV(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country_code", "country_name", "region", "year", "rate"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.CountryCode,
			rec.CountryName,
			rec.Region,
			strconv.Itoa(rec.Year),
			formatRate(rec.Rate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CompareCSV writes a comparison set as one year column plus one column per
// country, in entry order. Rows cover the union of years across entries,
// ascending; a country with no value for a year gets an empty cell.
func CompareCSV(w io.Writer, entries []compare.Entry) error {
	yearSet := make(map[int]struct{})
	for _, e := range entries {
		for _, p := range e.Points {
			yearSet[p.Year] = struct{}{}
		}
	}
	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	header := make([]string, 0, len(entries)+1)
	header = append(header, "year")
	for _, e := range entries {
		header = append(header, e.Code)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, year := range years {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(year))
		for _, e := range entries {
			if rate, ok := e.Points.Rate(year); ok {
				row = append(row, formatRate(rate))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
