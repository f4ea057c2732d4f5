package mapdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

func fixtureSnapshot() *series.Snapshot {
	return series.NewSnapshot([]domain.Record{
		{CountryCode: "DEU", CountryName: "Germany", Region: "Europe", Year: 2022, Rate: 6.9},
		{CountryCode: "JPN", CountryName: "Japan", Region: "Asia", Year: 2022, Rate: -0.2},
		{CountryCode: "TUR", CountryName: "Turkiye", Region: "Middle East", Year: 2022, Rate: 72.3},
		{CountryCode: "USA", CountryName: "United States", Region: "North America", Year: 2021, Rate: 4.7},
		// No entry in the coordinate table
		{CountryCode: "XKX", CountryName: "Kosovo", Region: "Europe", Year: 2022, Rate: 11.6},
	}, "cache")
}

func TestPrepareDropsUnmappableCountries(t *testing.T) {
	rows, err := Prepare(fixtureSnapshot(), 2022)
	require.NoError(t, err)

	codes := make([]string, len(rows))
	for i, row := range rows {
		codes[i] = row.Code
	}
	// USA has no 2022 observation, XKX has no coordinates.
	assert.Equal(t, []string{"DEU", "JPN", "TUR"}, codes)
}

func TestPrepareRowFields(t *testing.T) {
	rows, err := Prepare(fixtureSnapshot(), 2022)
	require.NoError(t, err)

	deu := rows[0]
	assert.Equal(t, "Germany", deu.Name)
	assert.Equal(t, "Europe", deu.Region)
	assert.InDelta(t, 51.2, deu.Lat, 1e-9)
	assert.InDelta(t, 69000.0, deu.Elevation, 1e-9)

	jpn := rows[1]
	assert.InDelta(t, 2000.0, jpn.Elevation, 1e-9, "elevation uses the absolute rate")
}

func TestPrepareEmptyYear(t *testing.T) {
	_, err := Prepare(fixtureSnapshot(), 1990)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientData))
}

func TestColorBuckets(t *testing.T) {
	tests := []struct {
		rate float64
		want [4]int
	}{
		{-0.5, [4]int{0, 100, 255, 200}},
		{0, [4]int{0, 200, 100, 200}},
		{1.9, [4]int{0, 200, 100, 200}},
		{2, [4]int{255, 200, 0, 200}},
		{4.9, [4]int{255, 200, 0, 200}},
		{5, [4]int{255, 100, 0, 200}},
		{9.9, [4]int{255, 100, 0, 200}},
		{10, [4]int{255, 0, 0, 200}},
		{72.3, [4]int{255, 0, 0, 200}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Color(tt.rate), "rate %g", tt.rate)
	}
}
