package platform

import (
	"shopopti-integration-layer/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "shopopti_credential_validations_total",
	Help: "Credential validation attempts by platform and outcome.",
}, []string{"platform", "outcome"})

func observeValidation(platform string, outcome domain.Outcome) {
	label := "valid"
	switch outcome.Kind {
	case domain.OutcomeRejected:
		label = "rejected"
	case domain.OutcomeTransportFault:
		label = "transport_fault"
	}
	validationsTotal.WithLabelValues(platform, label).Inc()
}
