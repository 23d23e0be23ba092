package enums

// PaymentMethod records how an order was paid. The storefront never charges a
// card; the simulated method is the only value.
type PaymentMethod string

const (
	PaymentMethodCardSimulated PaymentMethod = "Card (Simulated)"
)

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}
