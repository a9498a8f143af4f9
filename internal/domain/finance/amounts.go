// Package finance holds the money rules of a job: per-row amounts fixed at
// write time and the read-side financial summary.
//
// Every function here is pure. All arithmetic uses decimal values and results
// are rounded half away from zero to cents.
package finance

import (
	"metalshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LaborAmount is hours x hourly rate.
func LaborAmount(hours, hourlyRate decimal.Decimal) decimal.Decimal {
	return hours.Mul(hourlyRate).Round(2)
}

// MaterialAmount is quantity x unit price, plus VAT when vatRate is set and
// positive.
func MaterialAmount(quantity, unitPrice decimal.Decimal, vatRate *decimal.Decimal) decimal.Decimal {
	net := quantity.Mul(unitPrice)
	if vatRate != nil && vatRate.IsPositive() {
		net = net.Add(net.Mul(*vatRate).Div(hundred))
	}
	return net.Round(2)
}

// OfferTotals fills LineTotal on every item and returns the offer totals.
// Line totals exclude VAT; VAT is computed per line and summed.
func OfferTotals(items []entities.OfferItem) (subtotal, vatTotal, grandTotal decimal.Decimal) {
	subtotal, vatTotal = decimal.Zero, decimal.Zero
	for i := range items {
		line := items[i].Quantity.Mul(items[i].UnitPrice).Round(2)
		items[i].LineTotal = line
		subtotal = subtotal.Add(line)
		if items[i].VatRate.IsPositive() {
			vatTotal = vatTotal.Add(line.Mul(items[i].VatRate).Div(hundred).Round(2))
		}
	}
	return subtotal, vatTotal, subtotal.Add(vatTotal)
}
