package order

// Family names the variant family a Beverage belongs to.
type Family string

const (
	FamilyCoffee Family = "coffee"
	FamilySoda   Family = "soda"
)

// CoffeeVariant is a concrete coffee choice.
type CoffeeVariant string

const (
	CoffeeEspresso CoffeeVariant = "espresso"
	CoffeeArabica  CoffeeVariant = "arabica"
	CoffeeRobusta  CoffeeVariant = "robusta"
	CoffeeBlend    CoffeeVariant = "blend"
)

var coffeeLabels = map[CoffeeVariant]string{
	CoffeeEspresso: "Espresso",
	CoffeeArabica:  "Arabica",
	CoffeeRobusta:  "Robusta",
	CoffeeBlend:    "Blend",
}

// CoffeeVariants lists every coffee variant in menu order.
func CoffeeVariants() []CoffeeVariant {
	return []CoffeeVariant{CoffeeEspresso, CoffeeArabica, CoffeeRobusta, CoffeeBlend}
}

func (c CoffeeVariant) Valid() bool {
	_, ok := coffeeLabels[c]
	return ok
}

func (c CoffeeVariant) String() string {
	if label, ok := coffeeLabels[c]; ok {
		return label
	}
	return string(c)
}

// SodaVariant is a concrete soda choice.
type SodaVariant string

const (
	SodaPepsi       SodaVariant = "pepsi"
	SodaCoke        SodaVariant = "coke"
	SodaSprite      SodaVariant = "sprite"
	SodaFanta       SodaVariant = "fanta"
	SodaDrPepper    SodaVariant = "dr_pepper"
	SodaMountainDew SodaVariant = "mountain_dew"
)

var sodaLabels = map[SodaVariant]string{
	SodaPepsi:       "Pepsi",
	SodaCoke:        "Coke",
	SodaSprite:      "Sprite",
	SodaFanta:       "Fanta",
	SodaDrPepper:    "Dr Pepper",
	SodaMountainDew: "Mountain Dew",
}

// SodaVariants lists every soda variant in menu order.
func SodaVariants() []SodaVariant {
	return []SodaVariant{SodaPepsi, SodaCoke, SodaSprite, SodaFanta, SodaDrPepper, SodaMountainDew}
}

func (s SodaVariant) Valid() bool {
	_, ok := sodaLabels[s]
	return ok
}

func (s SodaVariant) String() string {
	if label, ok := sodaLabels[s]; ok {
		return label
	}
	return string(s)
}

// Beverage is the selected drink: exactly one of a coffee or a soda variant.
// The zero value is the unset selection.
type Beverage struct {
	family Family
	coffee CoffeeVariant
	soda   SodaVariant
}

// Coffee selects a coffee variant.
func Coffee(v CoffeeVariant) Beverage {
	return Beverage{family: FamilyCoffee, coffee: v}
}

// Soda selects a soda variant.
func Soda(v SodaVariant) Beverage {
	return Beverage{family: FamilySoda, soda: v}
}

func (b Beverage) Family() Family { return b.family }

func (b Beverage) IsZero() bool { return b == Beverage{} }

// Coffee returns the coffee variant when the coffee family is active.
func (b Beverage) Coffee() (CoffeeVariant, bool) {
	return b.coffee, b.family == FamilyCoffee
}

// Soda returns the soda variant when the soda family is active.
func (b Beverage) Soda() (SodaVariant, bool) {
	return b.soda, b.family == FamilySoda
}

// Valid reports whether the active family carries a known variant.
func (b Beverage) Valid() bool {
	switch b.family {
	case FamilyCoffee:
		return b.coffee.Valid()
	case FamilySoda:
		return b.soda.Valid()
	default:
		return false
	}
}

// Label is the display label of the active variant.
func (b Beverage) Label() string {
	switch b.family {
	case FamilyCoffee:
		return b.coffee.String()
	case FamilySoda:
		return b.soda.String()
	default:
		return ""
	}
}

func (b Beverage) String() string { return b.Label() }

// kindLabel is the summary line label for the active family.
func (b Beverage) kindLabel() string {
	if b.family == FamilySoda {
		return "Soda Type"
	}
	return "Coffee Type"
}
