package projection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

func TestProjectCompoundsSequentialRates(t *testing.T) {
	s := domain.Series{
		{Year: 2020, Rate: 10},
		{Year: 2021, Rate: -10},
	}

	result, err := Project(s, 2020, 2021, 100)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.InDelta(t, 110.0, result.Rows[0].Amount, 1e-9)
	assert.InDelta(t, 110.0, result.Rows[0].PriceIndex, 1e-9)
	assert.InDelta(t, 99.0, result.Rows[1].Amount, 1e-9)
	assert.InDelta(t, 99.0, result.Rows[1].PriceIndex, 1e-9)

	assert.InDelta(t, 99.0, result.FinalAmount, 1e-9)
	assert.InDelta(t, -1.0, result.CumulativeInflationPct, 1e-9)
}

func TestProjectFlagsMissingYearsAsInterpolated(t *testing.T) {
	s := domain.Series{
		{Year: 2020, Rate: 5},
		// 2021 missing
		{Year: 2022, Rate: 5},
	}

	result, err := Project(s, 2020, 2022, 100)
	require.NoError(t, err)

	require.Len(t, result.Rows, 3, "missing years appear in the output, never skipped")
	assert.Equal(t, 2021, result.Rows[1].Year)
	assert.True(t, result.Rows[1].Interpolated)
	assert.InDelta(t, 105.0, result.Rows[1].Amount, 1e-9, "gap year is a 0% change")
	assert.False(t, result.Rows[0].Interpolated)
	assert.InDelta(t, 110.25, result.FinalAmount, 1e-9)
}

func TestProjectSingleYear(t *testing.T) {
	s := domain.Series{{Year: 2020, Rate: 2}}

	result, err := Project(s, 2020, 2020, 500)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.InDelta(t, 510.0, result.FinalAmount, 1e-9)
	assert.InDelta(t, 2.0, result.CumulativeInflationPct, 1e-9)
}

func TestProjectRejectsInvertedRange(t *testing.T) {
	s := domain.Series{{Year: 2020, Rate: 2}}

	_, err := Project(s, 2021, 2020, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}

func TestProjectRejectsNonPositiveAmount(t *testing.T) {
	s := domain.Series{{Year: 2020, Rate: 2}}

	for _, amount := range []float64{0, -50} {
		_, err := Project(s, 2020, 2020, amount)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidRange))
	}
}

func TestProjectRejectsMissingStartYear(t *testing.T) {
	s := domain.Series{{Year: 2021, Rate: 2}}

	_, err := Project(s, 2020, 2021, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}
