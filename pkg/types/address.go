package types

import "strings"

// Address is the delivery destination captured at checkout.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (a Address) Trimmed() Address {
	return Address{
		Line1: strings.TrimSpace(a.Line1),
		Line2: strings.TrimSpace(a.Line2),
		City:  strings.TrimSpace(a.City),
		State: strings.TrimSpace(a.State),
		Zip:   strings.TrimSpace(a.Zip),
	}
}

// Complete reports whether every required field is present after trimming.
func (a Address) Complete() bool {
	trimmed := a.Trimmed()
	return trimmed.Line1 != "" && trimmed.City != "" && trimmed.State != "" && trimmed.Zip != ""
}
