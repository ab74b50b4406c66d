package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bursary_applications_submitted_total",
			Help: "Total number of applications accepted at intake",
		},
	)

	ApplicationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bursary_applications_rejected_total",
			Help: "Total number of submissions rejected at intake",
		},
		[]string{"reason"},
	)

	DocumentsVerified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bursary_documents_verified_total",
			Help: "Total number of document verification runs by outcome",
		},
		[]string{"outcome"},
	)

	VerificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "bursary_verification_duration_seconds",
			Help: "Duration of document verification in seconds",
		},
		[]string{"document_type"},
	)

	ReviewTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bursary_review_transitions_total",
			Help: "Total number of application status transitions",
		},
		[]string{"new_status"},
	)
)
