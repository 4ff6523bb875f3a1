package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query pipeline Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suggest",
			Name:      "search_requests_total",
			Help:      "Total number of search pipeline runs",
		},
		[]string{"status"}, // "ok" / "error"
	)

	LayoutFixesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggest",
			Name:      "layout_fixes_total",
			Help:      "Queries rewritten by the keyboard layout corrector",
		},
	)

	NumericFiltersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suggest",
			Name:      "numeric_filters_total",
			Help:      "Queries with an extracted quantity filter",
		},
		[]string{"unit"},
	)

	PurityDemotionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "suggest",
			Name:      "purity_demotions_total",
			Help:      "Candidates demoted by the category purity filter",
		},
	)

	SearchCandidatesFetched = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "suggest",
			Name:      "search_candidates_fetched",
			Help:      "Candidates retrieved from the index before truncation",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(LayoutFixesTotal)
	prometheus.MustRegister(NumericFiltersTotal)
	prometheus.MustRegister(PurityDemotionsTotal)
	prometheus.MustRegister(SearchCandidatesFetched)
	pipelineMetricsRegistered = true
}
