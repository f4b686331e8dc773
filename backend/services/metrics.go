package services

import (
	"time"

	"salesrep-roster/backend/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Calculation kinds recorded by Metrics
const (
	KindSalesRep = "salesrep"
	KindOptimal  = "optimal"
)

// Metrics records roster calculations. A nil *Metrics is valid and records nothing.
type Metrics struct {
	calculations    *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	representatives *prometheus.GaugeVec
	countries       *prometheus.GaugeVec
}

// NewMetrics creates the roster collectors and registers them with reg.
// prometheus.DefaultRegisterer is used when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roster",
			Name:      "calculations_total",
			Help:      "Roster calculations by kind and result.",
		}, []string{"kind", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roster",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent computing a roster or sales rep report.",
			Buckets:   []float64{.00001, .0001, .001, .01, .1},
		}, []string{"kind"}),
		representatives: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "roster",
			Name:      "representatives",
			Help:      "Representatives per region from the latest optimal roster covering that region.",
		}, []string{"region"}),
		countries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "roster",
			Name:      "region_countries",
			Help:      "Countries per region from the latest optimal roster covering that region.",
		}, []string{"region"}),
	}
	reg.MustRegister(m.calculations, m.duration, m.representatives, m.countries)
	return m
}

// ObserveSalesReps records one sales rep report
func (m *Metrics) ObserveSalesReps(started time.Time, err error) {
	if m == nil {
		return
	}
	m.observe(KindSalesRep, started, err)
}

// ObserveRoster records one optimal roster calculation. When full is set the
// roster covers every stored country, so regions missing from it are dropped
// from the per-region gauges.
func (m *Metrics) ObserveRoster(started time.Time, roster []models.RosterEntry, full bool, err error) {
	if m == nil {
		return
	}
	m.observe(KindOptimal, started, err)
	if err != nil {
		return
	}
	if full {
		m.representatives.Reset()
		m.countries.Reset()
	}

	reps := map[string]int{}
	countries := map[string]int{}
	for _, e := range roster {
		reps[e.Region]++
		countries[e.Region] += e.CountryCount
	}
	for region, n := range reps {
		m.representatives.WithLabelValues(region).Set(float64(n))
		m.countries.WithLabelValues(region).Set(float64(countries[region]))
	}
}

func (m *Metrics) observe(kind string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.calculations.WithLabelValues(kind, result).Inc()
	m.duration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
