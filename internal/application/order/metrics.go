package order

import (
	"github.com/Zhima-Mochi/brewterm/internal/observability"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// useCaseMetrics holds the RED instruments bound to one use case label.
type useCaseMetrics struct {
	success  observability.BoundCounter
	failure  observability.BoundCounter
	duration observability.BoundHistogram
}

func bindUseCase(m observability.Metrics, useCase string) useCaseMetrics {
	requests := m.Counter(observability.MUsecaseRequests)
	uc := observability.L("use_case", useCase)
	return useCaseMetrics{
		success:  requests.Bind(uc, observability.L("outcome", outcomeSuccess)),
		failure:  requests.Bind(uc, observability.L("outcome", outcomeError)),
		duration: m.Histogram(observability.MUsecaseDuration).Bind(uc),
	}
}

func (u useCaseMetrics) record(outcome string, latency float64) {
	if outcome == outcomeSuccess {
		u.success.Add(1)
	} else {
		u.failure.Add(1)
	}
	u.duration.Observe(latency)
}
