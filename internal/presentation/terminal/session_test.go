package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	apporder "github.com/Zhima-Mochi/brewterm/internal/application/order"
	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/id"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/memory"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/brewterm/internal/observability/logctx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type run struct {
	out  string
	repo *memory.OrderRepository
	err  error
}

func runSession(t *testing.T, input string) run {
	t.Helper()
	repo := memory.NewOrderRepository()
	svc := apporder.NewService(repo, id.NewSequence("order"), nil)
	var out bytes.Buffer
	err := NewSession(strings.NewReader(input), &out, svc, nil).Run(context.Background())
	return run{out: out.String(), repo: repo, err: err}
}

func (r run) only(t *testing.T) *domain.Order {
	t.Helper()
	all := r.repo.All(context.Background())
	if len(all) != 1 {
		t.Fatalf("orders: want=1 got=%d\n%s", len(all), r.out)
	}
	return all[0]
}

func TestSessionExit(t *testing.T) {
	r := runSession(t, "3\n")
	if r.err != nil {
		t.Fatalf("Run: %v", r.err)
	}
	if !strings.HasPrefix(r.out, "=== Coffee Order System ===\n") {
		t.Fatalf("banner missing:\n%s", r.out)
	}
	for _, want := range []string{
		"What would you like to do?",
		"1. Create new order",
		"2. View all orders",
		"3. Exit",
		"Enter your choice (1-3): ",
		"Thank you for using the Coffee Order System!",
	} {
		if !strings.Contains(r.out, want) {
			t.Fatalf("output missing %q:\n%s", want, r.out)
		}
	}
}

func TestSessionInvalidMenuChoice(t *testing.T) {
	r := runSession(t, "invalid\n3\n")
	if !strings.Contains(r.out, "Invalid choice. Please try again.\n\n\nWhat would you like to do?") {
		t.Fatalf("missing re-prompt:\n%s", r.out)
	}
}

func TestSessionEndOfInputEndsCleanly(t *testing.T) {
	for _, input := range []string{"", "1\n1\n"} {
		r := runSession(t, input)
		if r.err != nil {
			t.Fatalf("input %q: Run: %v", input, r.err)
		}
		if strings.Contains(r.out, "Thank you") {
			t.Fatalf("input %q: EOF must not print the farewell", input)
		}
		if !r.repo.IsEmpty(context.Background()) {
			t.Fatalf("input %q: partial create must not store an order", input)
		}
	}
}

func TestSessionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := apporder.NewService(memory.NewOrderRepository(), nil, nil)
	err := NewSession(strings.NewReader("3\n"), &bytes.Buffer{}, svc, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: want=%v got=%v", context.Canceled, err)
	}
}

func TestSessionCreatesCoffee(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		size      domain.Size
		coffee    domain.CoffeeVariant
		grind     domain.GrindType
		additions int
	}{
		{
			name:   "first of everything",
			input:  "1\n1\n1\n1\n1\n\n3\n",
			size:   domain.SizeSmall,
			coffee: domain.CoffeeEspresso,
			grind:  domain.GrindNone,
		},
		{
			name:      "multiple additions",
			input:     "1\n2\n1\n3\n2\n1,2,3\n3\n",
			size:      domain.SizeMedium,
			coffee:    domain.CoffeeRobusta,
			grind:     domain.GrindWholeBean,
			additions: 3,
		},
		{
			name:      "duplicate additions collapse",
			input:     "1\n3\n1\n4\n6\n2, 2 ,2\n3\n",
			size:      domain.SizeLarge,
			coffee:    domain.CoffeeBlend,
			grind:     domain.GrindExtraFine,
			additions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runSession(t, tt.input)
			o := r.only(t)

			if !strings.Contains(r.out, "✓ Order created successfully!\nOrder ID: order-1\n") {
				t.Fatalf("success message missing:\n%s", r.out)
			}
			if o.Size() != tt.size || o.Grind() != tt.grind {
				t.Fatalf("size/grind: want=%s/%s got=%s/%s", tt.size, tt.grind, o.Size(), o.Grind())
			}
			if v, ok := o.Beverage().Coffee(); !ok || v != tt.coffee {
				t.Fatalf("coffee: want=%s got=%s ok=%v", tt.coffee, v, ok)
			}
			if got := o.Additions().Len(); got != tt.additions {
				t.Fatalf("additions: want=%d got=%d", tt.additions, got)
			}
		})
	}
}

func TestSessionSodaSkipsGrind(t *testing.T) {
	// size 2, soda, Sprite, no additions
	r := runSession(t, "1\n2\n2\n3\n\n3\n")
	o := r.only(t)

	if !strings.Contains(r.out, "Grind type automatically set to 'None' for soda orders.") {
		t.Fatalf("auto grind notice missing:\n%s", r.out)
	}
	if strings.Contains(r.out, "Select grind type:") {
		t.Fatalf("soda must not prompt for grind:\n%s", r.out)
	}
	if v, ok := o.Beverage().Soda(); !ok || v != domain.SodaSprite {
		t.Fatalf("soda: want=%s got=%s ok=%v", domain.SodaSprite, v, ok)
	}
	if o.Grind() != domain.GrindNone {
		t.Fatalf("grind: want=%s got=%s", domain.GrindNone, o.Grind())
	}
}

func TestSessionRepromptsOnBadSelections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "size",
			input: "1\ninvalid\n99\n1\n1\n1\n1\n\n3\n",
			want: []string{
				"Invalid input. Please enter a number.",
				"Invalid choice. Please enter a number between 1 and 3",
			},
		},
		{
			name:  "category",
			input: "1\n1\nx\n5\n1\n1\n1\n\n3\n",
			want: []string{
				"Invalid input. Please enter a number.",
				"Invalid choice. Please enter 1 or 2.",
			},
		},
		{
			name:  "coffee type",
			input: "1\n1\n1\nabc\n0\n1\n1\n\n3\n",
			want:  []string{"Invalid choice. Please enter a number between 1 and 4"},
		},
		{
			name:  "soda type",
			input: "1\n1\n2\n7\n6\n\n3\n",
			want:  []string{"Invalid choice. Please enter a number between 1 and 6"},
		},
		{
			name:  "grind",
			input: "1\n1\n1\n1\ninvalid\n100\n1\n\n3\n",
			want: []string{
				"Invalid input. Please enter a number.",
				"Invalid choice. Please enter a number between 1 and 6",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runSession(t, tt.input)
			r.only(t)
			for _, w := range tt.want {
				if !strings.Contains(r.out, w) {
					t.Fatalf("output missing %q:\n%s", w, r.out)
				}
			}
		})
	}
}

func TestSessionSkipsInvalidAdditions(t *testing.T) {
	r := runSession(t, "1\n1\n1\n1\n1\n1,invalid,99,2\n3\n")
	o := r.only(t)

	if got := o.Additions().Len(); got != 2 {
		t.Fatalf("additions: want=2 got=%d", got)
	}
	if !o.Additions().Has(domain.AdditionMilk) || !o.Additions().Has(domain.AdditionSugar) {
		t.Fatalf("additions: got=%s", o.Additions())
	}
	for _, w := range []string{
		"Warning: Skipping invalid input: invalid",
		"Warning: Skipping invalid choice: 99",
	} {
		if !strings.Contains(r.out, w) {
			t.Fatalf("output missing %q:\n%s", w, r.out)
		}
	}
}

func TestSessionViewOrders(t *testing.T) {
	empty := runSession(t, "2\n3\n")
	if !strings.Contains(empty.out, "=== All Orders ===\nNo orders found.\n") {
		t.Fatalf("empty listing:\n%s", empty.out)
	}

	r := runSession(t, "1\n1\n1\n1\n1\n\n1\n2\n2\n1\n\n2\n3\n")
	if got := r.repo.Count(context.Background()); got != 2 {
		t.Fatalf("orders: want=2 got=%d", got)
	}
	for _, w := range []string{
		"=== All Orders ===\nTotal orders: 2\n\nOrder ID: order-1\n",
		"  Coffee Type: Espresso\n",
		"Order ID: order-2\n",
		"  Soda Type: Pepsi\n",
		"  Additions: None\n",
	} {
		if !strings.Contains(r.out, w) {
			t.Fatalf("output missing %q:\n%s", w, r.out)
		}
	}
}

func TestSessionLogsCarryCommandID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zaplogger.New(zap.New(core))

	repo := memory.NewOrderRepository()
	svc := apporder.NewService(repo, id.NewSequence("order"), nil)
	var out bytes.Buffer
	if err := NewSession(strings.NewReader("3\n"), &out, svc, log).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if logs.FilterMessage("session_ended").Len() != 1 {
		t.Fatalf("want one session_ended line")
	}

	ctx := WithCommandContext(context.Background(), log, "create_order", map[string]string{"command_id": "cmd-1", "tenant": ""})
	logctx.From(ctx).Info("probe")
	probe := logs.FilterMessage("probe").All()
	if len(probe) != 1 {
		t.Fatalf("want one probe line")
	}
	fields := probe[0].ContextMap()
	if fields["command_id"] != "cmd-1" || fields["command"] != "create_order" {
		t.Fatalf("fields: got=%v", fields)
	}
	if _, ok := fields["tenant"]; ok {
		t.Fatalf("empty attrs must be dropped: got=%v", fields)
	}
}

type snapshotService struct {
	orders []*domain.Order
	lists  int
}

func (f *snapshotService) CreateOrder(context.Context, apporder.CreateOrderInput) (*apporder.CreateOrderResult, error) {
	return nil, errors.New("not used")
}

func (f *snapshotService) ListOrders(context.Context) []*domain.Order {
	f.lists++
	return f.orders
}

func TestSessionViewOrdersReadsOneSnapshot(t *testing.T) {
	ids := id.NewSequence("snap")
	var orders []*domain.Order
	for i := 0; i < 2; i++ {
		o, err := domain.New(domain.SizeSmall, domain.GrindNone, domain.Soda(domain.SodaFanta), nil, domain.WithIDGenerator(ids))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		orders = append(orders, o)
	}
	svc := &snapshotService{orders: orders}

	var out bytes.Buffer
	if err := NewSession(strings.NewReader("2\n3\n"), &out, svc, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if svc.lists != 1 {
		t.Fatalf("ListOrders calls: want=1 got=%d", svc.lists)
	}
	for _, w := range []string{"Total orders: 2\n", "Order ID: snap-1\n", "Order ID: snap-2\n"} {
		if !strings.Contains(out.String(), w) {
			t.Fatalf("output missing %q:\n%s", w, out.String())
		}
	}
}
