package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zhima-Mochi/brewterm/internal/application"
	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
	"github.com/Zhima-Mochi/brewterm/internal/observability"
	"github.com/Zhima-Mochi/brewterm/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	orderService       = "order-service"
	useCaseOrderCreate = "order.create"
	spanPrefix         = "UC."
)

var (
	ErrNotFound   = errors.New("order: not found")
	ErrRepository = errors.New("order: repository failure")
)

// CreateOrderUseCase validates a selection, builds the order and stores it.
type CreateOrderUseCase struct {
	repo        domain.Repository
	idGenerator IDGenerator
	tel         observability.Observability

	log     observability.Logger
	red     useCaseMetrics
	created map[domain.Family]observability.BoundCounter // orders_created_total{family}
	size    observability.Gauge                          // order_registry_size
}

var _ application.UseCase[CreateOrderInput, *CreateOrderResult] = (*CreateOrderUseCase)(nil)

// NewCreateOrderUseCase wires the dependencies required to execute the use case.
// A nil idGen keeps the domain's random UUID source; a nil tel disables telemetry.
func NewCreateOrderUseCase(
	repo domain.Repository,
	idGen IDGenerator,
	tel observability.Observability,
) *CreateOrderUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()
	createdCounter := metrics.Counter(observability.MOrdersCreated)

	return &CreateOrderUseCase{
		repo:        repo,
		idGenerator: idGen,
		tel:         tel,
		log:         tel.Logger().With(observability.F("service", orderService)),
		red:         bindUseCase(metrics, useCaseOrderCreate),
		created: map[domain.Family]observability.BoundCounter{
			domain.FamilyCoffee: createdCounter.Bind(observability.L("family", string(domain.FamilyCoffee))),
			domain.FamilySoda:   createdCounter.Bind(observability.L("family", string(domain.FamilySoda))),
		},
		size: metrics.Gauge(observability.MRegistrySize),
	}
}

type CreateOrderInput struct {
	Size      domain.Size
	Grind     domain.GrindType
	Beverage  domain.Beverage
	Additions []domain.Addition
}

type CreateOrderResult struct {
	Order *domain.Order
	// GrindAutoSet reports that the grind was forced to none for a soda.
	GrindAutoSet bool
}

// Execute performs the order creation flow.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderInput) (_ *CreateOrderResult, err error) {
	logger := logctx.FromOr(ctx, uc.log).With(observability.F("use_case", useCaseOrderCreate))

	var entity *domain.Order
	grindAutoSet := false

	ctx, span := uc.tel.Tracer().Start(ctx, spanPrefix+"CreateOrder",
		attribute.String("use_case", useCaseOrderCreate),
		attribute.String("order.size", string(cmd.Size)),
		attribute.String("order.family", string(cmd.Beverage.Family())),
	)
	start := time.Now()
	outcome, statusText := outcomeSuccess, "OK"

	defer func() {
		lat := time.Since(start).Seconds()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		uc.red.record(outcome, lat)

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if entity != nil {
			fields = append(fields,
				observability.F("order_id", entity.ID()),
				observability.F("created_at", entity.CreatedAt().Format(time.RFC3339Nano)),
			)
		}
		if grindAutoSet {
			fields = append(fields, observability.F("grind_auto_set", true))
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}

		logger.Info("use_case_done", fields...)
	}()

	if uc.repo == nil {
		outcome, statusText = outcomeError, "REPOSITORY_MISSING"
		return nil, fmt.Errorf("%w: no repository configured", ErrRepository)
	}
	if err := ctx.Err(); err != nil {
		outcome, statusText = outcomeError, "CONTEXT_CANCELED"
		return nil, err
	}

	grind := cmd.Grind
	if cmd.Beverage.Family() == domain.FamilySoda && grind != domain.GrindNone {
		grind = domain.GrindNone
		grindAutoSet = true
		span.AddEvent("order.grind_auto_set")
	}

	var opts []domain.Option
	if uc.idGenerator != nil {
		opts = append(opts, domain.WithIDGenerator(uc.idGenerator))
	}
	entity, err = domain.New(cmd.Size, grind, cmd.Beverage, cmd.Additions, opts...)
	if err != nil {
		outcome, statusText = outcomeError, constructionStatus(err)
		return nil, fmt.Errorf("order: construct: %w", err)
	}

	if err := uc.repo.Add(ctx, entity); err != nil {
		outcome, statusText = outcomeError, "REPO_ADD_FAILED"
		return nil, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	if c, ok := uc.created[entity.Beverage().Family()]; ok {
		c.Add(1)
	}
	uc.size.Set(float64(uc.repo.Count(ctx)))

	span.SetAttributes(attribute.String("order.id", entity.ID()))
	span.AddEvent("order.created",
		trace.WithAttributes(
			attribute.String("order.id", entity.ID()),
			attribute.String("order.created_at", entity.CreatedAt().Format(time.RFC3339Nano)),
		),
	)

	return &CreateOrderResult{Order: entity, GrindAutoSet: grindAutoSet}, nil
}

func constructionStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrSizeRequired):
		return "SIZE_REQUIRED"
	case errors.Is(err, domain.ErrGrindRequired):
		return "GRIND_REQUIRED"
	case errors.Is(err, domain.ErrBeverageRequired):
		return "BEVERAGE_REQUIRED"
	case errors.Is(err, domain.ErrUnknownAddition):
		return "ADDITION_INVALID"
	case errors.Is(err, domain.ErrGrindNotApplicable):
		return "GRIND_NOT_APPLICABLE"
	default:
		return "DOMAIN_CONSTRUCTION_FAILED"
	}
}
