package services

import (
	"errors"
	"testing"

	"salesrep-roster/backend/models"

	"github.com/stretchr/testify/require"
)

func TestMinSalesReps(t *testing.T) {
	t.Run("ceil of count over seven", func(t *testing.T) {
		for n := 1; n <= 200; n++ {
			reps, err := MinSalesReps(n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, reps, 1)
			require.Equal(t, (n+MaxCountriesPerRep-1)/MaxCountriesPerRep, reps, "n=%d", n)
		}
	})

	t.Run("known values", func(t *testing.T) {
		cases := map[int]int{1: 1, 3: 1, 7: 1, 8: 2, 14: 2, 15: 3, 16: 3, 21: 3, 22: 4}
		for n, want := range cases {
			reps, err := MinSalesReps(n)
			require.NoError(t, err)
			require.Equal(t, want, reps, "n=%d", n)
		}
	})

	t.Run("zero countries is a domain error", func(t *testing.T) {
		_, err := MinSalesReps(0)
		require.Error(t, err)
		require.True(t, IsDomainError(err))
		require.True(t, errors.Is(err, ErrEmptyRegion))
	})
}

func TestMaxSalesReps(t *testing.T) {
	require.Equal(t, 1, MaxSalesReps(0))
	require.Equal(t, 1, MaxSalesReps(1))
	require.Equal(t, 1, MaxSalesReps(2))
	require.Equal(t, 1, MaxSalesReps(3))
	require.Equal(t, 1, MaxSalesReps(5))
	require.Equal(t, 2, MaxSalesReps(6))
	require.Equal(t, 5, MaxSalesReps(16))

	for n := 1; n <= 200; n++ {
		minReps, err := MinSalesReps(n)
		require.NoError(t, err)
		require.LessOrEqual(t, minReps, MaxSalesReps(n), "n=%d", n)
	}
}

func TestCalculateSalesReps(t *testing.T) {
	t.Run("one range per region in first-seen order", func(t *testing.T) {
		countries := append(regionCountries("Europe", 16), regionCountries("Asia", 2)...)

		ranges, err := CalculateSalesReps(countries)

		require.NoError(t, err)
		require.Equal(t, []models.SalesRepRange{
			{Region: "Europe", MinSalesRep: 3, MaxSalesRep: 5},
			{Region: "Asia", MinSalesRep: 1, MaxSalesRep: 1},
		}, ranges)
	})

	t.Run("empty input yields empty report", func(t *testing.T) {
		ranges, err := CalculateSalesReps(nil)
		require.NoError(t, err)
		require.NotNil(t, ranges)
		require.Empty(t, ranges)
	})
}
