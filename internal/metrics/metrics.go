package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service bundles the prometheus collectors the app maintains. It owns its
// registry so multiple instances (e.g. in tests) never collide on the global
// default registry.
type Service struct {
	Registry *prometheus.Registry

	interpretedRequests *prometheus.CounterVec
}

func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(registry)

	return &Service{
		Registry: registry,
		interpretedRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dapp_gateway",
			Name:      "interpreted_requests_total",
			Help:      "Display records produced by the request interpreter, by session method and record kind.",
		}, []string{"method", "kind"}),
	}
}

// ObserveInterpretedRequest counts one interpreted session request.
func (s *Service) ObserveInterpretedRequest(method string, kind string) {
	if s == nil {
		return
	}
	s.interpretedRequests.WithLabelValues(method, kind).Inc()
}
