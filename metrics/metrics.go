package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"flowcalc/model"
)

var (
	calculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flowcalc",
			Name:      "calculations_total",
			Help:      "Completed correlation calculations by mode and flow regime.",
		},
		[]string{"mode", "regime"},
	)
	calculationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flowcalc",
			Name:      "calculation_errors_total",
			Help:      "Rejected calculations by error kind.",
		},
		[]string{"kind"},
	)
	reynoldsHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "flowcalc",
		Name:      "reynolds_number",
		Help:      "Reynolds numbers of completed calculations.",
		Buckets:   prometheus.ExponentialBuckets(10, 10, 8),
	})
	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "flowcalc",
		Name:      "websocket_sessions",
		Help:      "Open websocket sessions.",
	})
)

func init() {
	prometheus.MustRegister(calculationsTotal, calculationErrorsTotal, reynoldsHistogram, activeSessions)
}

func RecordResult(res model.CalculationResult) {
	calculationsTotal.WithLabelValues(string(res.Mode), string(res.Regime)).Inc()
	reynoldsHistogram.Observe(res.Reynolds)
}

func RecordError(kind string) {
	calculationErrorsTotal.WithLabelValues(kind).Inc()
}

func SessionOpened() {
	activeSessions.Inc()
}

func SessionClosed() {
	activeSessions.Dec()
}
