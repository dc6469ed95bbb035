package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "path"},
	)

	// Spin flow metrics
	SpinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spins_total",
			Help: "Total number of spin attempts by outcome",
		},
		[]string{"outcome"},
	)
	CodesIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "codes_issued_total",
			Help: "Total number of redemption codes issued",
		},
	)
	ChallengesIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "challenges_issued_total",
			Help: "Total number of verification challenges issued",
		},
	)
	ChallengeVerificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_verifications_total",
			Help: "Total number of challenge verification attempts by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(register)
}

func register() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		SpinsTotal,
		CodesIssuedTotal,
		ChallengesIssuedTotal,
		ChallengeVerificationsTotal,
	)
}
