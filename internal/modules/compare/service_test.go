package compare

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

func fixtureSet() map[string]domain.Series {
	return map[string]domain.Series{
		"USA": {
			{Year: 2018, Rate: 2.4},
			{Year: 2019, Rate: 1.8},
			{Year: 2020, Rate: 1.2},
			{Year: 2021, Rate: 4.7},
		},
		"ZRO": {
			{Year: 2018, Rate: 0},
			{Year: 2019, Rate: 0},
			{Year: 2020, Rate: 0},
		},
		"GAP": {
			{Year: 2019, Rate: 10},
			{Year: 2021, Rate: -10}, // 2020 missing
		},
		"OLD": {
			{Year: 1999, Rate: 3.0},
		},
	}
}

func TestBuildRawKeepsOrderAndGaps(t *testing.T) {
	entries, err := Build(fixtureSet(), []string{"GAP", "USA"}, domain.YearRange{From: 2018, To: 2021}, Options{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "GAP", entries[0].Code, "input order is preserved")
	require.Len(t, entries[0].Points, 2, "gaps stay gaps")
	assert.Equal(t, 2019, entries[0].Points[0].Year)
	assert.Equal(t, 2021, entries[0].Points[1].Year)
	assert.Nil(t, entries[0].BaseYear)
}

func TestBuildNormalizeCompoundsIndex(t *testing.T) {
	entries, err := Build(fixtureSet(), []string{"GAP"}, domain.YearRange{From: 2019, To: 2021}, Options{Normalize: true})
	require.NoError(t, err)

	points := entries[0].Points
	require.Len(t, points, 2)
	require.NotNil(t, entries[0].BaseYear)
	assert.Equal(t, 2019, *entries[0].BaseYear)

	// Base year anchors at 100; the next in-range year compounds on it.
	assert.InDelta(t, 100.0, points[0].Rate, 1e-12)
	assert.InDelta(t, 90.0, points[1].Rate, 1e-12)
}

func TestBuildNormalizeZeroRatesStayAtHundred(t *testing.T) {
	entries, err := Build(fixtureSet(), []string{"ZRO"}, domain.YearRange{From: 2018, To: 2020}, Options{Normalize: true})
	require.NoError(t, err)

	for _, p := range entries[0].Points {
		assert.InDelta(t, 100.0, p.Rate, 1e-12)
	}
}

func TestBuildPerCountryBaseYears(t *testing.T) {
	set := fixtureSet()
	entries, err := Build(set, []string{"USA", "GAP"}, domain.YearRange{From: 2018, To: 2021}, Options{Normalize: true})
	require.NoError(t, err)

	// Each country rebases on its own earliest in-range year; they are not
	// forced onto a common origin.
	assert.Equal(t, 2018, *entries[0].BaseYear)
	assert.Equal(t, 2019, *entries[1].BaseYear)
}

func TestBuildSmooth(t *testing.T) {
	entries, err := Build(fixtureSet(), []string{"USA"}, domain.YearRange{From: 2018, To: 2021}, Options{Smooth: true})
	require.NoError(t, err)

	points := entries[0].Points
	require.Len(t, points, 4)
	assert.InDelta(t, 2.4, points[0].Rate, 1e-9)
	assert.InDelta(t, 2.1, points[1].Rate, 1e-9)
	assert.InDelta(t, 1.8, points[2].Rate, 1e-9) // (2.4+1.8+1.2)/3
}

func TestBuildNormalizeWinsOverSmooth(t *testing.T) {
	entries, err := Build(fixtureSet(), []string{"ZRO"}, domain.YearRange{From: 2018, To: 2020}, Options{Normalize: true, Smooth: true})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, entries[0].Points[0].Rate, 1e-12)
	assert.NotNil(t, entries[0].BaseYear)
}

func TestBuildEmptySeries(t *testing.T) {
	_, err := Build(fixtureSet(), []string{"USA", "OLD"}, domain.YearRange{From: 2018, To: 2021}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptySeries))

	_, err = Build(fixtureSet(), []string{"XXX"}, domain.YearRange{From: 2018, To: 2021}, Options{})
	assert.True(t, errors.Is(err, domain.ErrEmptySeries))
}

func TestBuildRejectsTooManyCountries(t *testing.T) {
	codes := make([]string, MaxCountries+1)
	for i := range codes {
		codes[i] = "USA"
	}
	_, err := Build(fixtureSet(), codes, domain.YearRange{From: 2018, To: 2021}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	set := fixtureSet()
	_, err := Build(set, []string{"USA"}, domain.YearRange{From: 2018, To: 2021}, Options{Normalize: true})
	require.NoError(t, err)
	assert.InDelta(t, 2.4, set["USA"][0].Rate, 1e-12)
}
