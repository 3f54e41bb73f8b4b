// Package metrics exposes Prometheus collectors for the residents service.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/safeforhall/internal/membership"
	"github.com/mmynk/safeforhall/internal/resident"
)

// Include outcomes recorded by ObserveInclude.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeAmbiguous = "ambiguous"
	OutcomeIndex     = "index_out_of_range"
	OutcomeNotFound  = "not_found"
	OutcomeDuplicate = "duplicate"
	OutcomeCapacity  = "capacity_exceeded"
	OutcomeInternal  = "internal"
)

// Metrics holds the service collectors.
type Metrics struct {
	Includes          *prometheus.CounterVec
	ResidentsIncluded prometheus.Counter
	RPCDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Includes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safeforhall",
			Name:      "include_commands_total",
			Help:      "Include commands by outcome.",
		}, []string{"outcome"}),
		ResidentsIncluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safeforhall",
			Name:      "residents_included_total",
			Help:      "Residents added to events.",
		}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "safeforhall",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and connect code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
	reg.MustRegister(m.Includes, m.ResidentsIncluded, m.RPCDuration)
	return m
}

// ObserveInclude records the outcome of one include command.
func (m *Metrics) ObserveInclude(added int, err error) {
	outcome := IncludeOutcome(err)
	m.Includes.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.ResidentsIncluded.Add(float64(added))
	}
}

// IncludeOutcome classifies an include error as a metric label.
func IncludeOutcome(err error) string {
	var (
		empty *membership.EmptyResolutionError
		dup   *membership.DuplicateMemberError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, resident.ErrAmbiguousMix):
		return OutcomeAmbiguous
	case errors.Is(err, resident.ErrFormat), errors.Is(err, membership.ErrInvalidCommand):
		return OutcomeInvalid
	case errors.Is(err, membership.ErrIndexOutOfRange):
		return OutcomeIndex
	case errors.As(err, &empty):
		return OutcomeNotFound
	case errors.As(err, &dup):
		return OutcomeDuplicate
	case errors.Is(err, membership.ErrCapacityExceeded):
		return OutcomeCapacity
	default:
		return OutcomeInternal
	}
}
