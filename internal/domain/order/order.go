package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("order: invalid argument")

	ErrSizeRequired       = fmt.Errorf("%w: size is required", ErrInvalidArgument)
	ErrGrindRequired      = fmt.Errorf("%w: grind type is required", ErrInvalidArgument)
	ErrBeverageRequired   = fmt.Errorf("%w: beverage is required", ErrInvalidArgument)
	ErrUnknownAddition    = fmt.Errorf("%w: unknown addition", ErrInvalidArgument)
	ErrGrindNotApplicable = fmt.Errorf("%w: soda orders take no grind", ErrInvalidArgument)
	ErrNilOrder           = fmt.Errorf("%w: order is nil", ErrInvalidArgument)
	ErrEmptyID            = fmt.Errorf("%w: generated id is empty", ErrInvalidArgument)
)

// IDGenerator produces process-unique order identifiers.
type IDGenerator interface {
	NewID() string
}

type idFunc func() string

func (f idFunc) NewID() string { return f() }

type options struct {
	ids IDGenerator
	now func() time.Time
}

// Option customises order construction.
type Option func(*options)

// WithIDGenerator replaces the default random UUID source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) {
		if gen != nil {
			o.ids = gen
		}
	}
}

// WithClock replaces time.Now for the creation timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Order is an immutable beverage order. Two orders are the same order exactly
// when their ids match.
type Order struct {
	id        string
	size      Size
	grind     GrindType
	beverage  Beverage
	additions AdditionSet
	createdAt time.Time
}

// New validates the selection and assigns a fresh id. A nil additions slice
// means no additions; the slice is copied, so later changes by the caller are
// not observed.
func New(size Size, grind GrindType, beverage Beverage, additions []Addition, opts ...Option) (*Order, error) {
	cfg := options{
		ids: idFunc(uuid.NewString),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case size == "":
		return nil, ErrSizeRequired
	case !size.Valid():
		return nil, fmt.Errorf("%w: unknown size %q", ErrInvalidArgument, string(size))
	}
	switch {
	case grind == "":
		return nil, ErrGrindRequired
	case !grind.Valid():
		return nil, fmt.Errorf("%w: unknown grind type %q", ErrInvalidArgument, string(grind))
	}
	switch {
	case beverage.IsZero():
		return nil, ErrBeverageRequired
	case !beverage.Valid():
		return nil, fmt.Errorf("%w: unknown %s variant", ErrInvalidArgument, beverage.Family())
	}
	if beverage.Family() == FamilySoda && grind != GrindNone {
		return nil, ErrGrindNotApplicable
	}

	set, ok := NewAdditionSet(additions...)
	if !ok {
		return nil, ErrUnknownAddition
	}

	id := cfg.ids.NewID()
	if id == "" {
		return nil, ErrEmptyID
	}

	return &Order{
		id:        id,
		size:      size,
		grind:     grind,
		beverage:  beverage,
		additions: set,
		createdAt: cfg.now().UTC(),
	}, nil
}

func (o *Order) ID() string { return o.id }

func (o *Order) Size() Size { return o.size }

func (o *Order) Grind() GrindType { return o.grind }

func (o *Order) Beverage() Beverage { return o.beverage }

// Additions returns the order's additions as a read-only set.
func (o *Order) Additions() AdditionSet { return o.additions }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Equal reports whether both orders carry the same id.
func (o *Order) Equal(other *Order) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.id == other.id
}

// Summary renders the order for display. The grind line is left out for
// GrindNone.
func (o *Order) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order ID: %s\n", o.id)
	fmt.Fprintf(&sb, "  Size: %s\n", o.size)
	if o.grind != GrindNone {
		fmt.Fprintf(&sb, "  Grind Type: %s\n", o.grind)
	}
	fmt.Fprintf(&sb, "  %s: %s\n", o.beverage.kindLabel(), o.beverage.Label())
	fmt.Fprintf(&sb, "  Additions: %s\n", o.additions.Labels())
	return sb.String()
}

func (o *Order) String() string { return o.Summary() }
