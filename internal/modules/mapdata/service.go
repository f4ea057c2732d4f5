// Package mapdata prepares the per-year payload for the 3D map view: one row
// per country with coordinates, an RGBA severity color and a column height.
package mapdata

import (
	"fmt"
	"sort"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// Row is one country's map marker for the selected year.
type Row struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Rate      float64 `json:"rate"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Color     [4]int  `json:"color"`
	Elevation float64 `json:"elevation"`
}

// Color buckets the rate into the map's RGBA scheme:
// blue below 0, green below 2, yellow below 5, orange below 10, red above.
func Color(rate float64) [4]int {
	switch {
	case rate < 0:
		return [4]int{0, 100, 255, 200}
	case rate < 2:
		return [4]int{0, 200, 100, 200}
	case rate < 5:
		return [4]int{255, 200, 0, 200}
	case rate < 10:
		return [4]int{255, 100, 0, 200}
	default:
		return [4]int{255, 0, 0, 200}
	}
}

// Prepare builds the map rows for one year. Countries without a rate for the
// year or without coordinates are dropped. Rows come back sorted by code.
// Fails with domain.ErrInsufficientData when no country has both.
func Prepare(snap *series.Snapshot, year int) ([]Row, error) {
	rows := make([]Row, 0, len(snap.Countries()))

	for _, c := range snap.Countries() {
		coord, ok := Coords[c.Code]
		if !ok {
			continue
		}
		s, ok := snap.Series(c.Code)
		if !ok {
			continue
		}
		rate, ok := s.Rate(year)
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Code:      c.Code,
			Name:      c.Name,
			Region:    c.Region,
			Rate:      rate,
			Lat:       coord.Lat,
			Lon:       coord.Lon,
			Color:     Color(rate),
			Elevation: abs(rate) * 10000,
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no mappable observations for year %d", domain.ErrInsufficientData, year)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	return rows, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
