package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

func seriesOf(points ...domain.Point) domain.Series {
	return domain.Series(points)
}

func TestDerive(t *testing.T) {
	s := seriesOf(
		domain.Point{Year: 2018, Rate: 2.0},
		domain.Point{Year: 2019, Rate: 1.0},
		domain.Point{Year: 2021, Rate: 5.0}, // 2020 is a gap
		domain.Point{Year: 2022, Rate: 8.0},
	)

	stats, err := Derive(s, domain.YearRange{From: 2018, To: 2022})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 4.0, stats.Average, 1e-12)
	assert.Equal(t, Extreme{Rate: 8.0, Year: 2022}, stats.Max)
	assert.Equal(t, Extreme{Rate: 1.0, Year: 2019}, stats.Min)
	require.NotNil(t, stats.Current)
	assert.InDelta(t, 8.0, *stats.Current, 1e-12)
}

func TestDeriveCurrentAbsentWhenFinalYearMissing(t *testing.T) {
	s := seriesOf(
		domain.Point{Year: 2018, Rate: 2.0},
		domain.Point{Year: 2019, Rate: 3.0},
	)

	stats, err := Derive(s, domain.YearRange{From: 2018, To: 2021})
	require.NoError(t, err)
	assert.Nil(t, stats.Current, "missing final year is absent, not an error")
}

func TestDeriveTiesBreakToEarliestYear(t *testing.T) {
	s := seriesOf(
		domain.Point{Year: 2018, Rate: 5.0},
		domain.Point{Year: 2019, Rate: 5.0},
		domain.Point{Year: 2020, Rate: 5.0},
	)

	stats, err := Derive(s, domain.YearRange{From: 2018, To: 2020})
	require.NoError(t, err)
	assert.Equal(t, 2018, stats.Max.Year)
	assert.Equal(t, 2018, stats.Min.Year)
}

func TestDeriveInvariants(t *testing.T) {
	cases := []domain.Series{
		seriesOf(domain.Point{Year: 2020, Rate: -1.5}),
		seriesOf(domain.Point{Year: 2019, Rate: 3}, domain.Point{Year: 2020, Rate: 3}),
		seriesOf(domain.Point{Year: 2018, Rate: -2}, domain.Point{Year: 2019, Rate: 0}, domain.Point{Year: 2020, Rate: 11}),
	}

	for _, s := range cases {
		stats, err := Derive(s, domain.YearRange{From: 2015, To: 2024})
		require.NoError(t, err)

		// min <= average <= max for any series with at least one point.
		assert.LessOrEqual(t, stats.Min.Rate, stats.Average)
		assert.LessOrEqual(t, stats.Average, stats.Max.Rate)
		assert.GreaterOrEqual(t, stats.StdDev, 0.0)
	}
}

func TestDeriveStdDevZeroIffConstant(t *testing.T) {
	constant := seriesOf(domain.Point{Year: 2019, Rate: 2.5}, domain.Point{Year: 2020, Rate: 2.5})
	stats, err := Derive(constant, domain.YearRange{From: 2019, To: 2020})
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.StdDev)

	varied := seriesOf(domain.Point{Year: 2019, Rate: 2.5}, domain.Point{Year: 2020, Rate: 2.6})
	stats, err = Derive(varied, domain.YearRange{From: 2019, To: 2020})
	require.NoError(t, err)
	assert.Greater(t, stats.StdDev, 0.0)
}

func TestDeriveNoPointsInRange(t *testing.T) {
	s := seriesOf(domain.Point{Year: 2010, Rate: 1.0})

	_, err := Derive(s, domain.YearRange{From: 2015, To: 2020})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientData))
}

func TestDeriveInvertedRange(t *testing.T) {
	s := seriesOf(domain.Point{Year: 2020, Rate: 1.0})

	_, err := Derive(s, domain.YearRange{From: 2021, To: 2019})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}

func TestRollingKeepsYears(t *testing.T) {
	s := seriesOf(
		domain.Point{Year: 2018, Rate: 1},
		domain.Point{Year: 2019, Rate: 2},
		domain.Point{Year: 2020, Rate: 3},
		domain.Point{Year: 2021, Rate: 4},
		domain.Point{Year: 2022, Rate: 5},
	)

	out := Rolling(s, 3)
	require.Len(t, out, 5)

	expected := []float64{1, 1.5, 2, 3, 4}
	for i, p := range out {
		assert.Equal(t, s[i].Year, p.Year)
		assert.InDelta(t, expected[i], p.Rate, 1e-9)
	}

	// Input series untouched.
	assert.InDelta(t, 3.0, s[2].Rate, 1e-12)
}
