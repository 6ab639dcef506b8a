package sim

import "github.com/prometheus/client_golang/prometheus"

var (
	generationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gol_generations_total",
		Help: "Total number of generations computed",
	})
	population = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gol_population",
		Help: "Number of living cells in the current grid",
	})
	stepDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gol_step_duration_seconds",
		Help:    "Histogram of generation compute time in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
	textStamps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gol_text_stamps_total",
		Help: "Total number of names stamped onto the grid",
	})
)

func init() {
	prometheus.MustRegister(generationsTotal, population, stepDuration, textStamps)
}
