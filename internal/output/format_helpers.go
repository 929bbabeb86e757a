package output

import "github.com/shopspring/decimal"

// FormatValue renders a float with a fixed number of decimal places.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatValue(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
