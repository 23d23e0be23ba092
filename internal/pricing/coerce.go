package pricing

import (
	"math"
	"strconv"
	"strings"
)

// ParseAxis turns a raw form value into a dimension in inches. Anything that
// does not parse to a finite number degrades to 0 so a half-filled form still
// produces a quote; clamping pulls the zero back into bounds.
func ParseAxis(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseSize applies ParseAxis to each raw axis value.
func ParseSize(w, h, d string) Dimensions {
	return Dimensions{
		W: ParseAxis(w),
		H: ParseAxis(h),
		D: ParseAxis(d),
	}
}
