package view

import "github.com/shopspring/decimal"

// Money formats a decimal amount with its currency symbol, e.g. "E£ 249.99".
func Money(amount decimal.Decimal, currency string) string {
	return currencySymbol(currency) + amount.StringFixed(2)
}

func currencySymbol(code string) string {
	switch code {
	case "EGP":
		return "E£ "
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "SAR":
		return "SAR "
	default:
		return code + " "
	}
}
