// Package billing holds the invoice totals computation. All arithmetic is
// fixed-point decimal; the only rounding point is the tax amount, rounded
// half-up to currency precision so subtotal + taxAmount == total exactly.
package billing

import (
	"github.com/shopspring/decimal"

	"vetapp-api/internal/models"
)

// CurrencyPrecision is the NUMERIC scale invoices are stored with.
const CurrencyPrecision = 2

var oneHundred = decimal.NewFromInt(100)

// Totals is the result of pricing a set of line items.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals assigns each item its line subtotal (quantity * unit price)
// and returns the invoice totals for the given tax rate percentage.
// The items slice is mutated in place; order is preserved.
func ComputeTotals(items []models.InvoiceItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for i := range items {
		items[i].LineSubtotal = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		subtotal = subtotal.Add(items[i].LineSubtotal)
	}

	tax := subtotal.Mul(taxRate).Div(oneHundred).Round(CurrencyPrecision)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}

// ComputeTotalsWithDiscount applies a percentage discount to the subtotal
// before tax. discountPct of zero degenerates to ComputeTotals.
func ComputeTotalsWithDiscount(items []models.InvoiceItem, taxRate, discountPct decimal.Decimal) Totals {
	base := ComputeTotals(items, taxRate)

	discount := base.Subtotal.Mul(discountPct).Div(oneHundred).Round(CurrencyPrecision)
	discounted := base.Subtotal.Sub(discount)
	tax := discounted.Mul(taxRate).Div(oneHundred).Round(CurrencyPrecision)

	return Totals{
		Subtotal:  discounted,
		TaxAmount: tax,
		Total:     discounted.Add(tax),
	}
}
