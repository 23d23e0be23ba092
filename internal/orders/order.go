package orders

import (
	"strings"
	"time"

	"github.com/customcabinetco/storefront-backend/internal/cart"
	"github.com/customcabinetco/storefront-backend/pkg/enums"
	"github.com/customcabinetco/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records how the order was paid. Simulated only.
type Payment struct {
	Method enums.PaymentMethod `json:"method"`
}

// Order is the immutable record created once at successful checkout. Orders
// are never mutated or deleted after they are appended.
type Order struct {
	ID              string            `json:"id"`
	CreatedAt       time.Time         `json:"created_at"`
	Customer        types.Customer    `json:"customer"`
	Fulfillment     enums.Fulfillment `json:"fulfillment"`
	DeliveryAddress *types.Address    `json:"delivery_address,omitempty"`
	Items           []cart.LineItem   `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	DeliveryFee     decimal.Decimal   `json:"delivery_fee"`
	Total           decimal.Decimal   `json:"total"`
	Payment         Payment           `json:"payment"`
}

// NewID generates an order id: the human-readable prefix plus a short random
// alphanumeric suffix. Uniqueness rests on the uuid entropy; collisions are
// not detected.
func NewID(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return prefix + "-" + suffix
}
