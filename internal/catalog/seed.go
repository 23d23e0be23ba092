package catalog

import (
	"github.com/customcabinetco/storefront-backend/internal/pricing"
	"github.com/shopspring/decimal"
)

// seedProducts is the built-in cabinet lineup. Base prices apply at the
// standard size; per-inch rates charge only for growth above it.
func seedProducts() []Product {
	return []Product{
		{
			ID:        "wall-cabinet",
			Name:      "Wall Cabinet",
			BasePrice: decimal.NewFromInt(200),
			Rules: pricing.Rules{
				StandardSize: pricing.Dimensions{W: 32, H: 32, D: 21},
				SizeUpcharge: pricing.UpchargeRates{
					PerInchW: decimal.NewFromInt(10),
					PerInchH: decimal.NewFromInt(8),
					PerInchD: decimal.NewFromInt(12),
				},
				StainGradeUpchargeRate: decimal.NewFromFloat(0.15),
			},
			Bounds: pricing.Bounds{
				Min: pricing.Dimensions{W: 12, H: 12, D: 12},
				Max: pricing.Dimensions{W: 60, H: 48, D: 30},
			},
		},
		{
			ID:        "base-cabinet",
			Name:      "Base Cabinet",
			BasePrice: decimal.NewFromInt(260),
			Rules: pricing.Rules{
				StandardSize: pricing.Dimensions{W: 36, H: 34.5, D: 24},
				SizeUpcharge: pricing.UpchargeRates{
					PerInchW: decimal.NewFromInt(12),
					PerInchH: decimal.NewFromInt(9),
					PerInchD: decimal.NewFromInt(14),
				},
				StainGradeUpchargeRate: decimal.NewFromFloat(0.15),
			},
			Bounds: pricing.Bounds{
				Min: pricing.Dimensions{W: 12, H: 30, D: 18},
				Max: pricing.Dimensions{W: 72, H: 42, D: 30},
			},
		},
		{
			ID:        "tall-pantry",
			Name:      "Tall Pantry Cabinet",
			BasePrice: decimal.NewFromInt(520),
			Rules: pricing.Rules{
				StandardSize: pricing.Dimensions{W: 24, H: 84, D: 24},
				SizeUpcharge: pricing.UpchargeRates{
					PerInchW: decimal.NewFromInt(14),
					PerInchH: decimal.NewFromInt(6),
					PerInchD: decimal.NewFromInt(14),
				},
				StainGradeUpchargeRate: decimal.NewFromFloat(0.15),
			},
			Bounds: pricing.Bounds{
				Min: pricing.Dimensions{W: 18, H: 72, D: 18},
				Max: pricing.Dimensions{W: 48, H: 96, D: 30},
			},
		},
		{
			ID:        "vanity-cabinet",
			Name:      "Bathroom Vanity Cabinet",
			BasePrice: decimal.NewFromInt(310),
			Rules: pricing.Rules{
				StandardSize: pricing.Dimensions{W: 30, H: 32, D: 21},
				SizeUpcharge: pricing.UpchargeRates{
					PerInchW: decimal.NewFromInt(11),
					PerInchH: decimal.NewFromInt(8),
					PerInchD: decimal.NewFromInt(13),
				},
				StainGradeUpchargeRate: decimal.NewFromFloat(0.15),
			},
			Bounds: pricing.Bounds{
				Min: pricing.Dimensions{W: 18, H: 28, D: 16},
				Max: pricing.Dimensions{W: 60, H: 36, D: 24},
			},
		},
	}
}
