package types

import "strings"

// Customer holds the identity fields collected at checkout. They are stored
// as entered; the storefront does not validate their format.
type Customer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c Customer) Trimmed() Customer {
	return Customer{
		FullName: strings.TrimSpace(c.FullName),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
	}
}
