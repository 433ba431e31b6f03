package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AcquisitionsTotal counts position acquisition attempts by outcome
	// (succeeded, failed, permission_required, rejected_in_flight, stale).
	AcquisitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mygeolocation",
			Name:      "acquisitions_total",
			Help:      "Total number of position acquisition attempts by outcome",
		},
		[]string{"outcome"},
	)

	// PermissionRequests counts permission prompts by result
	// (granted, denied, error).
	PermissionRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mygeolocation",
			Name:      "permission_requests_total",
			Help:      "Total number of location permission requests by result",
		},
		[]string{"result"},
	)

	// ViewportOps counts viewport operations by kind
	// (zoom_in, zoom_out, center, reset).
	ViewportOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mygeolocation",
			Name:      "viewport_ops_total",
			Help:      "Total number of viewport operations by kind",
		},
		[]string{"op"},
	)

	// ViewportReadFailures counts camera reads absorbed as silent no-ops.
	ViewportReadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mygeolocation",
			Name:      "viewport_read_failures_total",
			Help:      "Total number of rendering surface camera reads that failed",
		},
	)

	// WSClients tracks currently connected presentation clients.
	WSClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mygeolocation",
			Name:      "ws_clients",
			Help:      "Number of connected websocket presentation clients",
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(AcquisitionsTotal)
		prometheus.DefaultRegisterer.Register(PermissionRequests)
		prometheus.DefaultRegisterer.Register(ViewportOps)
		prometheus.DefaultRegisterer.Register(ViewportReadFailures)
		prometheus.DefaultRegisterer.Register(WSClients)
	})
}
