package util

import "fmt"

// FormatNumber renders a value in compact financial notation: 3.5T / 3.5B /
// 192.3M / 1.2K, two decimals below a thousand. The sign precedes the prefix
// ("-$62.8M").
func FormatNumber(value float64, prefix, suffix string) string {
	negative := value < 0
	v := value
	if negative {
		v = -v
	}

	var formatted string
	switch {
	case v >= 1e12:
		formatted = fmt.Sprintf("%.1fT", v/1e12)
	case v >= 1e9:
		formatted = fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		formatted = fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		formatted = fmt.Sprintf("%.1fK", v/1e3)
	default:
		formatted = fmt.Sprintf("%.2f", v)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + prefix + formatted + suffix
}

// FormatMoney is FormatNumber with a dollar prefix, "N/A" for absent values.
func FormatMoney(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return FormatNumber(*value, "$", "")
}

// FormatOptional renders an optional value with the given verb, "N/A" when absent.
func FormatOptional(value *float64, verb string) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf(verb, *value)
}
