// Package metrics exposes Prometheus metrics on a dedicated listener,
// separate from the API server so scrapes never compete with API traffic.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProofSubmissions counts accepted proof submissions.
	ProofSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_proof_submissions_total",
		Help: "Number of proofs accepted into the registry.",
	})

	// VerificationAttempts counts verification attempts by outcome
	// ("verified" or "rejected").
	VerificationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_verification_attempts_total",
		Help: "Number of proof verification attempts by outcome.",
	}, []string{"outcome"})

	// VerifierRegistrations counts verifier registrations.
	VerifierRegistrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_verifier_registrations_total",
		Help: "Number of verifiers registered.",
	})

	serviceInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "registry_service_info",
		Help: "Service identity, always 1.",
	}, []string{"service"})
)

// MetricsServer serves the Prometheus scrape endpoint.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server listening on addr, labelling the exposition
// with the service name.
func New(name, addr string) (*MetricsServer, error) {
	serviceInfo.WithLabelValues(name).Set(1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
