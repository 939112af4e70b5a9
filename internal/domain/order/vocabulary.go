package order

// Size is the cup size of an order.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var sizeLabels = map[Size]string{
	SizeSmall:  "Small",
	SizeMedium: "Medium",
	SizeLarge:  "Large",
}

// Sizes lists every size in menu order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

func (s Size) Valid() bool {
	_, ok := sizeLabels[s]
	return ok
}

func (s Size) String() string {
	if label, ok := sizeLabels[s]; ok {
		return label
	}
	return string(s)
}

// GrindType describes how coffee beans are ground. GrindNone is reserved for
// beverages that have no beans at all.
type GrindType string

const (
	GrindNone      GrindType = "none"
	GrindWholeBean GrindType = "whole_bean"
	GrindCoarse    GrindType = "coarse"
	GrindMedium    GrindType = "medium"
	GrindFine      GrindType = "fine"
	GrindExtraFine GrindType = "extra_fine"
)

var grindLabels = map[GrindType]string{
	GrindNone:      "None",
	GrindWholeBean: "Whole Bean",
	GrindCoarse:    "Coarse",
	GrindMedium:    "Medium",
	GrindFine:      "Fine",
	GrindExtraFine: "Extra Fine",
}

// GrindTypes lists every grind type in menu order, GrindNone first.
func GrindTypes() []GrindType {
	return []GrindType{GrindNone, GrindWholeBean, GrindCoarse, GrindMedium, GrindFine, GrindExtraFine}
}

func (g GrindType) Valid() bool {
	_, ok := grindLabels[g]
	return ok
}

func (g GrindType) String() string {
	if label, ok := grindLabels[g]; ok {
		return label
	}
	return string(g)
}

// Addition is an optional extra mixed into a beverage.
type Addition string

const (
	AdditionMilk    Addition = "milk"
	AdditionSugar   Addition = "sugar"
	AdditionCream   Addition = "cream"
	AdditionVanilla Addition = "vanilla"
	AdditionCaramel Addition = "caramel"
)

var additionLabels = map[Addition]string{
	AdditionMilk:    "Milk",
	AdditionSugar:   "Sugar",
	AdditionCream:   "Cream",
	AdditionVanilla: "Vanilla",
	AdditionCaramel: "Caramel",
}

// Additions lists every addition in menu order.
func Additions() []Addition {
	return []Addition{AdditionMilk, AdditionSugar, AdditionCream, AdditionVanilla, AdditionCaramel}
}

func (a Addition) Valid() bool {
	_, ok := additionLabels[a]
	return ok
}

func (a Addition) String() string {
	if label, ok := additionLabels[a]; ok {
		return label
	}
	return string(a)
}
