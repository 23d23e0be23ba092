package enums

import "fmt"

// Fulfillment selects how an order reaches the customer. Delivery requires an
// address and adds the flat delivery fee.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "Pickup"
	FulfillmentDelivery Fulfillment = "Delivery"
)

var validFulfillments = []Fulfillment{
	FulfillmentPickup,
	FulfillmentDelivery,
}

// String implements fmt.Stringer.
func (f Fulfillment) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Fulfillment.
func (f Fulfillment) IsValid() bool {
	for _, candidate := range validFulfillments {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFulfillment converts raw input into a Fulfillment. Empty input falls
// back to pickup, matching the storefront default.
func ParseFulfillment(value string) (Fulfillment, error) {
	if value == "" {
		return FulfillmentPickup, nil
	}
	for _, candidate := range validFulfillments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fulfillment %q", value)
}
