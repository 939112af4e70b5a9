package order

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

type counterIDs struct{ n int }

func (c *counterIDs) NewID() string {
	c.n++
	return "order-" + strconv.Itoa(c.n)
}

func TestNewAssignsFields(t *testing.T) {
	o, err := New(SizeMedium, GrindCoarse, Coffee(CoffeeArabica), []Addition{AdditionMilk, AdditionSugar})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if o.ID() == "" {
		t.Fatalf("ID: expected non-empty id")
	}
	if o.Size() != SizeMedium {
		t.Fatalf("Size: want=%q got=%q", SizeMedium, o.Size())
	}
	if o.Grind() != GrindCoarse {
		t.Fatalf("Grind: want=%q got=%q", GrindCoarse, o.Grind())
	}
	if o.Beverage() != Coffee(CoffeeArabica) {
		t.Fatalf("Beverage: want=%v got=%v", Coffee(CoffeeArabica), o.Beverage())
	}
	adds := o.Additions()
	if adds.Len() != 2 || !adds.Has(AdditionMilk) || !adds.Has(AdditionSugar) {
		t.Fatalf("Additions: got=%v", adds.Slice())
	}
	if o.CreatedAt().IsZero() {
		t.Fatalf("CreatedAt: expected timestamp")
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		o, err := New(SizeSmall, GrindFine, Coffee(CoffeeEspresso), nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, dup := seen[o.ID()]; dup {
			t.Fatalf("duplicate id %q", o.ID())
		}
		seen[o.ID()] = struct{}{}
	}
}

func TestNewOptions(t *testing.T) {
	ids := &counterIDs{}
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	o, err := New(SizeLarge, GrindNone, Soda(SodaCoke), nil, WithIDGenerator(ids), WithClock(func() time.Time { return at }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if o.ID() != "order-1" {
		t.Fatalf("ID: want=%q got=%q", "order-1", o.ID())
	}
	if !o.CreatedAt().Equal(at) {
		t.Fatalf("CreatedAt: want=%v got=%v", at, o.CreatedAt())
	}
}

func TestNewRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		size     Size
		grind    GrindType
		beverage Beverage
		adds     []Addition
		wantErr  error
	}{
		{"missing size", "", GrindFine, Coffee(CoffeeBlend), nil, ErrSizeRequired},
		{"unknown size", "venti", GrindFine, Coffee(CoffeeBlend), nil, ErrInvalidArgument},
		{"missing grind", SizeSmall, "", Coffee(CoffeeBlend), nil, ErrGrindRequired},
		{"unknown grind", SizeSmall, "powder", Coffee(CoffeeBlend), nil, ErrInvalidArgument},
		{"missing beverage", SizeSmall, GrindFine, Beverage{}, nil, ErrBeverageRequired},
		{"unknown coffee", SizeSmall, GrindFine, Coffee("decaf"), nil, ErrInvalidArgument},
		{"soda with grind", SizeSmall, GrindFine, Soda(SodaSprite), nil, ErrGrindNotApplicable},
		{"unknown addition", SizeSmall, GrindFine, Coffee(CoffeeBlend), []Addition{"salt"}, ErrUnknownAddition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := New(tt.size, tt.grind, tt.beverage, tt.adds)
			if err == nil {
				t.Fatalf("New: expected error, got order %v", o.ID())
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: want=%v got=%v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error %v must wrap ErrInvalidArgument", err)
			}
		})
	}
}

func TestNewRejectsEmptyGeneratedID(t *testing.T) {
	_, err := New(SizeSmall, GrindFine, Coffee(CoffeeBlend), nil, WithIDGenerator(idFunc(func() string { return "" })))
	if !errors.Is(err, ErrEmptyID) {
		t.Fatalf("error: want=%v got=%v", ErrEmptyID, err)
	}
}

func TestNewAllowsCoffeeWithoutGrind(t *testing.T) {
	if _, err := New(SizeSmall, GrindNone, Coffee(CoffeeEspresso), nil); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestNewCopiesAdditions(t *testing.T) {
	input := []Addition{AdditionMilk, AdditionSugar}
	o, err := New(SizeSmall, GrindFine, Coffee(CoffeeBlend), input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input[0] = AdditionCaramel
	_ = append(input, AdditionVanilla)

	adds := o.Additions()
	if adds.Has(AdditionCaramel) || adds.Has(AdditionVanilla) || !adds.Has(AdditionMilk) {
		t.Fatalf("caller mutation leaked into order: %v", adds.Slice())
	}
}

func TestAdditionsViewIsReadOnly(t *testing.T) {
	o, err := New(SizeSmall, GrindFine, Coffee(CoffeeBlend), []Addition{AdditionCream})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	view := o.Additions().Slice()
	view[0] = AdditionSugar
	_ = append(view, AdditionMilk)

	if got := o.Additions().Slice(); len(got) != 1 || got[0] != AdditionCream {
		t.Fatalf("Additions: want=[cream] got=%v", got)
	}
}

func TestNilAdditionsMeansEmpty(t *testing.T) {
	o, err := New(SizeSmall, GrindFine, Coffee(CoffeeBlend), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !o.Additions().IsEmpty() {
		t.Fatalf("Additions: want empty got=%v", o.Additions().Slice())
	}
}

func TestEqualUsesIDOnly(t *testing.T) {
	a, _ := New(SizeSmall, GrindFine, Coffee(CoffeeBlend), nil)
	b, _ := New(SizeSmall, GrindFine, Coffee(CoffeeBlend), nil)

	if !a.Equal(a) {
		t.Fatalf("an order must equal itself")
	}
	if a.Equal(b) {
		t.Fatalf("orders with different ids must differ")
	}
	if a.Equal(nil) {
		t.Fatalf("an order must not equal nil")
	}
}

func TestSummaryCoffee(t *testing.T) {
	o, err := New(SizeMedium, GrindCoarse, Coffee(CoffeeArabica), []Addition{AdditionSugar, AdditionMilk})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := o.Summary()

	for _, want := range []string{
		"Order ID: " + o.ID(),
		"Size: Medium",
		"Grind Type: Coarse",
		"Coffee Type: Arabica",
		"Additions: Milk, Sugar",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "Soda Type") {
		t.Fatalf("coffee summary must not mention soda:\n%s", s)
	}
}

func TestSummarySoda(t *testing.T) {
	o, err := New(SizeLarge, GrindNone, Soda(SodaPepsi), []Addition{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := o.String()

	for _, want := range []string{"Size: Large", "Soda Type: Pepsi", "Additions: None"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "Grind Type") {
		t.Fatalf("summary must omit the grind line for none:\n%s", s)
	}
}
