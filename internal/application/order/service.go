package order

import (
	"context"
	"fmt"
	"time"

	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
	"github.com/Zhima-Mochi/brewterm/internal/observability"
	"github.com/Zhima-Mochi/brewterm/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	useCaseOrderList   = "order.list"
	useCaseOrderGet    = "order.get"
	useCaseOrderRemove = "order.remove"
	useCaseOrderClear  = "order.clear"
)

// Service is the façade the terminal session talks to.
type Service struct {
	repo   domain.Repository
	create *CreateOrderUseCase
	tel    observability.Observability

	log  observability.Logger
	red  map[string]useCaseMetrics
	size observability.Gauge
}

func NewService(repo domain.Repository, idGen IDGenerator, tel observability.Observability) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()
	red := make(map[string]useCaseMetrics, 4)
	for _, uc := range []string{useCaseOrderList, useCaseOrderGet, useCaseOrderRemove, useCaseOrderClear} {
		red[uc] = bindUseCase(metrics, uc)
	}
	return &Service{
		repo:   repo,
		create: NewCreateOrderUseCase(repo, idGen, tel),
		tel:    tel,
		log:    tel.Logger().With(observability.F("service", orderService)),
		red:    red,
		size:   metrics.Gauge(observability.MRegistrySize),
	}
}

// CreateOrder delegates to CreateOrderUseCase.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	return s.create.Execute(ctx, in)
}

// ListOrders returns every stored order in insertion order.
func (s *Service) ListOrders(ctx context.Context) []*domain.Order {
	var orders []*domain.Order
	_ = s.observe(ctx, "ListOrders", useCaseOrderList, func(ctx context.Context) (string, error) {
		orders = s.repo.All(ctx)
		trace.SpanFromContext(ctx).SetAttributes(attribute.Int("order.count", len(orders)))
		return "OK", nil
	})
	return orders
}

// GetOrder looks an order up by id and returns ErrNotFound when absent.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var found *domain.Order
	err := s.observe(ctx, "GetOrder", useCaseOrderGet, func(ctx context.Context) (string, error) {
		o, ok := s.repo.FindByID(ctx, id)
		if !ok {
			return "NOT_FOUND", fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		found = o
		return "OK", nil
	}, observability.F("order_id", id))
	if err != nil {
		return nil, err
	}
	return found, nil
}

// RemoveOrder reports whether an order with the id was removed.
func (s *Service) RemoveOrder(ctx context.Context, id string) bool {
	removed := false
	_ = s.observe(ctx, "RemoveOrder", useCaseOrderRemove, func(ctx context.Context) (string, error) {
		removed = s.repo.Remove(ctx, id)
		s.size.Set(float64(s.repo.Count(ctx)))
		if !removed {
			return "NOT_FOUND", nil
		}
		return "OK", nil
	}, observability.F("order_id", id))
	return removed
}

// ClearOrders empties the registry and returns how many orders were dropped.
func (s *Service) ClearOrders(ctx context.Context) int {
	n := 0
	_ = s.observe(ctx, "ClearOrders", useCaseOrderClear, func(ctx context.Context) (string, error) {
		n = s.repo.Clear(ctx)
		s.size.Set(0)
		trace.SpanFromContext(ctx).SetAttributes(attribute.Int("order.cleared", n))
		return "OK", nil
	})
	return n
}

func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

func (s *Service) IsEmpty(ctx context.Context) bool {
	return s.repo.IsEmpty(ctx)
}

// observe runs fn inside a span and records the RED metrics plus one use_case_done line.
func (s *Service) observe(
	ctx context.Context,
	name, useCase string,
	fn func(ctx context.Context) (string, error),
	fields ...observability.Field,
) (err error) {
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCase))

	ctx, span := s.tel.Tracer().Start(ctx, spanPrefix+name, attribute.String("use_case", useCase))
	start := time.Now()
	outcome, statusText := outcomeSuccess, "OK"

	defer func() {
		lat := time.Since(start).Seconds()
		if err != nil {
			outcome = outcomeError
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		s.red[useCase].record(outcome, lat)

		fields = append(fields,
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		)
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	statusText, err = fn(ctx)
	return err
}
