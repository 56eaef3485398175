// Package metricsx exposes a Prometheus counter of dispatcher algorithm
// selections, wired through nat.AlgoTrace, and the /metrics HTTP handler
// that serves them. prometheus/client_golang is the retrieval pack's
// metrics dependency (cloudflared, moby and syncthing all vendor it).
package metricsx

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var algoSelections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "natcore",
	Name:      "algo_selections_total",
	Help:      "Count of arithmetic algorithm selections made by the dispatcher, by operation and algorithm.",
}, []string{"op", "algorithm"})

// TraceFunc returns a nat.AlgoTrace-compatible callback that increments
// algoSelections for each dispatcher algorithm choice. Combine it with
// other callbacks via logx.ComposeTrace rather than assigning
// nat.AlgoTrace directly.
func TraceFunc() func(op, algo string) {
	return func(op, algo string) {
		algoSelections.WithLabelValues(op, algo).Inc()
	}
}

// Handler returns the HTTP handler that serves the registered metrics in
// the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
