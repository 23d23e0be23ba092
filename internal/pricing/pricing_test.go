package pricing

import (
	"testing"

	"github.com/customcabinetco/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallCabinetRules() (decimal.Decimal, Rules, Bounds) {
	base := decimal.NewFromInt(200)
	rules := Rules{
		StandardSize: Dimensions{W: 32, H: 32, D: 21},
		SizeUpcharge: UpchargeRates{
			PerInchW: decimal.NewFromInt(10),
			PerInchH: decimal.NewFromInt(8),
			PerInchD: decimal.NewFromInt(12),
		},
		StainGradeUpchargeRate: decimal.NewFromFloat(0.15),
	}
	bounds := Bounds{
		Min: Dimensions{W: 12, H: 12, D: 12},
		Max: Dimensions{W: 60, H: 48, D: 30},
	}
	return base, rules, bounds
}

func TestQuoteStandardSizeIsBasePrice(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	result := Quote(base, rules.StandardSize, enums.FinishPaintGrade, rules, bounds)

	assert.True(t, result.Price.Equal(decimal.NewFromInt(200)), "price=%s", result.Price)
	assert.True(t, result.Breakdown.SizeUpcharge.IsZero())
	assert.True(t, result.Breakdown.StainUpcharge.IsZero())
}

func TestQuoteWidthUpcharge(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	result := Quote(base, Dimensions{W: 40, H: 32, D: 21}, enums.FinishPaintGrade, rules, bounds)

	assert.Equal(t, 8.0, result.Breakdown.DeltaW)
	assert.Equal(t, 0.0, result.Breakdown.DeltaH)
	assert.Equal(t, 0.0, result.Breakdown.DeltaD)
	assert.True(t, result.Breakdown.SizeUpcharge.Equal(decimal.NewFromInt(80)), "sizeUpcharge=%s", result.Breakdown.SizeUpcharge)
	assert.True(t, result.Price.Equal(decimal.NewFromInt(280)), "price=%s", result.Price)
}

func TestQuoteStainGradeUpcharge(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	result := Quote(base, Dimensions{W: 40, H: 32, D: 21}, enums.FinishStainGrade, rules, bounds)

	assert.True(t, result.Breakdown.StainUpcharge.Equal(decimal.NewFromInt(42)), "stainUpcharge=%s", result.Breakdown.StainUpcharge)
	assert.True(t, result.Price.Equal(decimal.NewFromInt(322)), "price=%s", result.Price)
}

func TestQuoteStainNeverCheaperThanPaint(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	sizes := []Dimensions{
		{W: 12, H: 12, D: 12},
		{W: 32, H: 32, D: 21},
		{W: 40, H: 45, D: 28},
		{W: 60, H: 48, D: 30},
		{W: 33.5, H: 32.25, D: 21},
	}
	for _, size := range sizes {
		paint := Quote(base, size, enums.FinishPaintGrade, rules, bounds)
		stain := Quote(base, size, enums.FinishStainGrade, rules, bounds)

		require.True(t, stain.Price.GreaterThanOrEqual(paint.Price),
			"stain %s < paint %s at %+v", stain.Price, paint.Price, size)

		// The stain difference matches the rounded upcharge to within a cent
		// because breakdown components round independently of the total.
		diff := stain.Price.Sub(paint.Price).Sub(stain.Breakdown.StainUpcharge).Abs()
		require.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"difference %s exceeds one cent at %+v", diff, size)
	}
}

func TestQuoteClampsIntoBounds(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	oversize := Quote(base, Dimensions{W: 500, H: -3, D: 21}, enums.FinishPaintGrade, rules, bounds)

	assert.Equal(t, Dimensions{W: 60, H: 12, D: 21}, oversize.NormalizedSize)
	assert.True(t, oversize.NormalizedSize.W <= bounds.Max.W)
	assert.True(t, oversize.NormalizedSize.H >= bounds.Min.H)
}

func TestQuoteBelowStandardNeverDiscounts(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	shrunk := Quote(base, Dimensions{W: 20, H: 15, D: 12}, enums.FinishPaintGrade, rules, bounds)

	assert.True(t, shrunk.Price.Equal(decimal.NewFromInt(200)), "price=%s", shrunk.Price)
	assert.True(t, shrunk.Breakdown.SizeUpcharge.IsZero())
}

func TestQuoteMonotonicInEachAxis(t *testing.T) {
	base, rules, bounds := wallCabinetRules()

	prev := decimal.Zero
	for w := bounds.Min.W; w <= bounds.Max.W; w += 2 {
		result := Quote(base, Dimensions{W: w, H: 32, D: 21}, enums.FinishStainGrade, rules, bounds)
		require.True(t, result.Price.GreaterThanOrEqual(prev),
			"price decreased from %s to %s at width %v", prev, result.Price, w)
		prev = result.Price
	}
}

func TestQuoteRoundsHalfAwayFromZero(t *testing.T) {
	rules := Rules{
		StandardSize:           Dimensions{W: 32, H: 32, D: 21},
		SizeUpcharge:           UpchargeRates{},
		StainGradeUpchargeRate: decimal.NewFromFloat(0.15),
	}
	bounds := Bounds{Min: Dimensions{W: 12, H: 12, D: 12}, Max: Dimensions{W: 60, H: 48, D: 30}}

	// 100.03 * 0.15 = 15.0045 -> upcharge rounds to 15.00; total 115.0345 -> 115.03
	result := Quote(decimal.NewFromFloat(100.03), Dimensions{W: 32, H: 32, D: 21}, enums.FinishStainGrade, rules, bounds)
	assert.Equal(t, "115.03", result.Price.StringFixed(2))

	// 100.10 * 0.15 = 15.015 -> the half cent rounds up, away from zero
	result = Quote(decimal.NewFromFloat(100.10), Dimensions{W: 32, H: 32, D: 21}, enums.FinishStainGrade, rules, bounds)
	assert.Equal(t, "15.02", result.Breakdown.StainUpcharge.StringFixed(2))
}

func TestParseAxisDefaultsToZero(t *testing.T) {
	assert.Equal(t, 40.0, ParseAxis("40"))
	assert.Equal(t, 21.5, ParseAxis(" 21.5 "))
	assert.Equal(t, 0.0, ParseAxis(""))
	assert.Equal(t, 0.0, ParseAxis("wide"))
	assert.Equal(t, 0.0, ParseAxis("NaN"))
	assert.Equal(t, 0.0, ParseAxis("+Inf"))
	assert.Equal(t, -5.0, ParseAxis("-5"))
}

func TestParseSizeCoercesEachAxis(t *testing.T) {
	size := ParseSize("40", "junk", "")
	assert.Equal(t, Dimensions{W: 40, H: 0, D: 0}, size)
}
