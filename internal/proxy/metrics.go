package proxy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the proxy's Prometheus counters.  A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Connections prometheus.Counter
	Responses   *prometheus.CounterVec
	RelayBytes  prometheus.Counter
}

// NewMetrics creates the proxy counters registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Connections: f.NewCounter(prometheus.CounterOpts{
			Name: "proxy_connections_total",
			Help: "Accepted client connections.",
		}),
		Responses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "proxy_requests_total",
			Help: "Handled requests by outcome.",
		}, []string{"outcome"}),
		RelayBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "proxy_relay_bytes_total",
			Help: "Response bytes relayed from origin servers to clients.",
		}),
	}
}

func (m *Metrics) connection() {
	if m != nil {
		m.Connections.Inc()
	}
}

func (m *Metrics) request(o outcome) {
	if m != nil {
		m.Responses.WithLabelValues(o.String()).Inc()
	}
}

func (m *Metrics) relayed(n int64) {
	if m != nil {
		m.RelayBytes.Add(float64(n))
	}
}
