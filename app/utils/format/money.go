package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 2}

// INR renders an amount with the rupee symbol and thousand grouping, for
// catalog and dashboard display.
func INR(amount interface{}) string {
	var dec decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		dec = v
	case float64:
		dec = decimal.NewFromFloat(v)
	case int:
		dec = decimal.NewFromInt(int64(v))
	case int64:
		dec = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return "₹0.00"
		}
		dec = parsed
	default:
		return "₹0.00"
	}
	return inr.FormatMoneyDecimal(dec)
}

// PlainINR renders an amount without grouping, e.g. "₹5000.00". Messages
// and invoices use this form.
func PlainINR(dec decimal.Decimal) string {
	return "₹" + dec.StringFixed(2)
}
