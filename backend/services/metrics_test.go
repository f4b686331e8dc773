package services

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("nil metrics is a no-op", func(t *testing.T) {
		var m *Metrics
		m.ObserveRoster(time.Now(), nil, true, nil)
		m.ObserveSalesReps(time.Now(), errors.New("boom"))
	})

	t.Run("records calculations and representatives", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())

		roster, err := CalculateOptimalSalesRepRoster(append(regionCountries("Europe", 16), regionCountries("Asia", 4)...))
		require.NoError(t, err)
		m.ObserveRoster(time.Now(), roster, true, nil)
		m.ObserveRoster(time.Now(), nil, true, errors.New("boom"))
		m.ObserveSalesReps(time.Now(), nil)

		require.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(KindOptimal, "ok")))
		require.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(KindOptimal, "error")))
		require.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(KindSalesRep, "ok")))
		require.Equal(t, 3.0, testutil.ToFloat64(m.representatives.WithLabelValues("Europe")))
		require.Equal(t, 1.0, testutil.ToFloat64(m.representatives.WithLabelValues("Asia")))
		require.Equal(t, 16.0, testutil.ToFloat64(m.countries.WithLabelValues("Europe")))
	})

	t.Run("full roster drops regions that are gone", func(t *testing.T) {
		m := NewMetrics(prometheus.NewRegistry())

		both, err := CalculateOptimalSalesRepRoster(append(regionCountries("Europe", 8), regionCountries("Asia", 4)...))
		require.NoError(t, err)
		m.ObserveRoster(time.Now(), both, true, nil)
		require.Equal(t, 2, testutil.CollectAndCount(m.representatives))

		europe, err := CalculateOptimalSalesRepRoster(regionCountries("Europe", 16))
		require.NoError(t, err)

		// a filtered roster only updates its own region
		m.ObserveRoster(time.Now(), europe, false, nil)
		require.Equal(t, 2, testutil.CollectAndCount(m.representatives))
		require.Equal(t, 3.0, testutil.ToFloat64(m.representatives.WithLabelValues("Europe")))

		m.ObserveRoster(time.Now(), europe, true, nil)
		require.Equal(t, 1, testutil.CollectAndCount(m.representatives))
		require.Equal(t, 1, testutil.CollectAndCount(m.countries))
		require.Equal(t, 16.0, testutil.ToFloat64(m.countries.WithLabelValues("Europe")))
	})
}
