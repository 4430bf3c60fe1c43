package services

import "github.com/shopspring/decimal"

// DefaultCountry is the label stored on cart lines whose country is
// unknown to the tax table. Unknown countries carry a 0% tax rate.
const DefaultCountry = "USA"

var oneHundred = decimal.NewFromInt(100)

// ComputeLineAmounts returns the tax fee and line total for a unit
// price and a country tax-rate percentage. All arithmetic is exact
// decimal; binary floats would drift on repeated percentages.
func ComputeLineAmounts(price, taxRate decimal.Decimal) (taxFee, total decimal.Decimal) {
	taxFee = price.Mul(taxRate).Div(oneHundred)
	total = price.Add(taxFee)
	return taxFee, total
}
