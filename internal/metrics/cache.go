package metrics

import "github.com/prometheus/client_golang/prometheus"

// StatsCacheTotal counts stats cache lookups by result ("hit"/"miss").
var StatsCacheTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "shelterdex",
		Name:      "stats_cache_total",
		Help:      "Stats cache lookups by result",
	},
	[]string{"result"},
)

// RegisterCacheMetrics registers cache metrics explicitly (no init()).
func RegisterCacheMetrics() {
	prometheus.MustRegister(StatsCacheTotal)
}
