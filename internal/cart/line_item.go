package cart

import (
	"github.com/customcabinetco/storefront-backend/internal/pricing"
	"github.com/customcabinetco/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// LineItem is one priced, sized, finished configuration plus quantity. The
// unit price is frozen when the item enters the cart and never recomputed.
type LineItem struct {
	ProductID string             `json:"product_id"`
	Name      string             `json:"name"`
	Finish    enums.Finish       `json:"finish"`
	Size      pricing.Dimensions `json:"size"`
	Qty       int                `json:"qty"`
	UnitPrice decimal.Decimal    `json:"unit_price"`
}

// LineKey identifies a cart entry for merging: two entries with the same key
// are the same configuration and must collapse into one line.
type LineKey struct {
	ProductID string
	Finish    enums.Finish
	W         float64
	H         float64
	D         float64
}

// Key derives the merge key from the item's already-normalized size.
func (li LineItem) Key() LineKey {
	return LineKey{
		ProductID: li.ProductID,
		Finish:    li.Finish,
		W:         li.Size.W,
		H:         li.Size.H,
		D:         li.Size.D,
	}
}

// LineTotal is the item's contribution to the cart subtotal.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Qty)))
}
