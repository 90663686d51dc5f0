package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode is the only currency the readiness dashboard reports in.
const CurrencyCode = "BDT"

// FormatBDT formats an amount as Bangladeshi Taka using Indian digit grouping.
// Example: 123456.5 returns "BDT 1,23,456.50"
// Example: -1000 returns "-BDT 1,000.00"
func FormatBDT(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	sign := ""
	if amount.IsNegative() && fixed != "0.00" {
		sign = "-"
	}
	return sign + CurrencyCode + " " + groupIndian(intPart) + "." + fracPart
}

// groupIndian inserts separators after the last three digits and every two before that.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
