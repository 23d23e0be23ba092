package pricing

import (
	"math"

	"github.com/customcabinetco/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Dimensions is a cabinet's width/height/depth in inches.
type Dimensions struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	D float64 `json:"d"`
}

// Bounds is the legal clamping range for a product's dimensions.
type Bounds struct {
	Min Dimensions `json:"min"`
	Max Dimensions `json:"max"`
}

// UpchargeRates is the per-inch-over-standard rate per axis.
type UpchargeRates struct {
	PerInchW decimal.Decimal `json:"per_inch_w"`
	PerInchH decimal.Decimal `json:"per_inch_h"`
	PerInchD decimal.Decimal `json:"per_inch_d"`
}

// Rules holds a product's pricing rules from the catalog.
type Rules struct {
	StandardSize           Dimensions      `json:"standard_size"`
	SizeUpcharge           UpchargeRates   `json:"size_upcharge"`
	StainGradeUpchargeRate decimal.Decimal `json:"stain_grade_upcharge_rate"`
}

// Breakdown itemizes a quote. SizeUpcharge and StainUpcharge are rounded
// independently of the total; their sum may differ from Price - BasePrice by
// one cent, which callers must tolerate.
type Breakdown struct {
	BasePrice     decimal.Decimal `json:"base_price"`
	DeltaW        float64         `json:"delta_w"`
	DeltaH        float64         `json:"delta_h"`
	DeltaD        float64         `json:"delta_d"`
	SizeUpcharge  decimal.Decimal `json:"size_upcharge"`
	StainUpcharge decimal.Decimal `json:"stain_upcharge"`
}

// Result is a priced configuration.
type Result struct {
	Price          decimal.Decimal `json:"price"`
	NormalizedSize Dimensions      `json:"normalized_size"`
	Breakdown      Breakdown       `json:"breakdown"`
}

// Quote prices a requested configuration. The requested size is clamped into
// bounds axis by axis, then only increases above the standard size add cost;
// a size below standard never discounts, because the base price already
// covers the cheapest buildable configuration. The stain-grade upcharge is
// applied multiplicatively on top of base plus size upcharge. All money is
// rounded to cents, half away from zero.
//
// The delta is always computed against the clamped size even if the catalog
// places the standard size outside the bounds; such a catalog entry is a
// configuration bug, not something the engine corrects.
func Quote(basePrice decimal.Decimal, size Dimensions, finish enums.Finish, rules Rules, bounds Bounds) Result {
	normalized := Dimensions{
		W: clamp(size.W, bounds.Min.W, bounds.Max.W),
		H: clamp(size.H, bounds.Min.H, bounds.Max.H),
		D: clamp(size.D, bounds.Min.D, bounds.Max.D),
	}

	std := rules.StandardSize
	deltaW := math.Max(0, normalized.W-std.W)
	deltaH := math.Max(0, normalized.H-std.H)
	deltaD := math.Max(0, normalized.D-std.D)

	sizeUpcharge := rules.SizeUpcharge.PerInchW.Mul(decimal.NewFromFloat(deltaW)).
		Add(rules.SizeUpcharge.PerInchH.Mul(decimal.NewFromFloat(deltaH))).
		Add(rules.SizeUpcharge.PerInchD.Mul(decimal.NewFromFloat(deltaD)))

	subtotal := basePrice.Add(sizeUpcharge)

	stainUpcharge := decimal.Zero
	if finish == enums.FinishStainGrade {
		stainUpcharge = subtotal.Mul(rules.StainGradeUpchargeRate)
	}

	return Result{
		Price:          subtotal.Add(stainUpcharge).Round(2),
		NormalizedSize: normalized,
		Breakdown: Breakdown{
			BasePrice:     basePrice,
			DeltaW:        deltaW,
			DeltaH:        deltaH,
			DeltaD:        deltaD,
			SizeUpcharge:  sizeUpcharge.Round(2),
			StainUpcharge: stainUpcharge.Round(2),
		},
	}
}

func clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}
