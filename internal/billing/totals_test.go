package billing

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetapp-api/internal/models"
)

func item(desc string, qty int, price string) models.InvoiceItem {
	return models.InvoiceItem{
		Description: desc,
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.InvoiceItem
		taxRate      string
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name: "consultation plus vaccines",
			items: []models.InvoiceItem{
				item("Consultation", 1, "80000"),
				item("Vaccine", 2, "15000"),
			},
			taxRate:      "19",
			wantSubtotal: "110000",
			wantTax:      "20900",
			wantTotal:    "130900",
		},
		{
			name:         "single free item",
			items:        []models.InvoiceItem{item("Courtesy checkup", 1, "0")},
			taxRate:      "19",
			wantSubtotal: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name:         "zero tax rate",
			items:        []models.InvoiceItem{item("Deworming", 3, "12500")},
			taxRate:      "0",
			wantSubtotal: "37500",
			wantTax:      "0",
			wantTotal:    "37500",
		},
		{
			name:         "tax rounds half up",
			items:        []models.InvoiceItem{item("Grooming", 1, "10.55")},
			taxRate:      "19",
			wantSubtotal: "10.55",
			wantTax:      "2",   // 2.0045 -> 2.00
			wantTotal:    "12.55",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, decimal.RequireFromString(tt.taxRate))

			assert.True(t, got.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)),
				"subtotal = %s", got.Subtotal)
			assert.True(t, got.TaxAmount.Equal(decimal.RequireFromString(tt.wantTax)),
				"taxAmount = %s", got.TaxAmount)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total = %s", got.Total)
		})
	}
}

// Generates random invoices and checks the contract invariants:
// lineSubtotal = quantity * unitPrice, subtotal = sum of line subtotals,
// total = subtotal + round(subtotal * taxRate / 100).
func TestComputeTotalsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	taxRate := decimal.NewFromInt(19)

	for trial := 0; trial < 500; trial++ {
		n := 1 + rng.Intn(8)
		items := make([]models.InvoiceItem, 0, n)
		for i := 0; i < n; i++ {
			// Non-negative prices with up to two decimal places.
			cents := rng.Int63n(50_000_000)
			items = append(items, models.InvoiceItem{
				Description: "svc",
				Quantity:    1 + rng.Intn(20),
				UnitPrice:   decimal.New(cents, -2),
			})
		}

		got := ComputeTotals(items, taxRate)

		sum := decimal.Zero
		for _, it := range items {
			expected := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			require.True(t, it.LineSubtotal.Equal(expected),
				"lineSubtotal %s != %d * %s", it.LineSubtotal, it.Quantity, it.UnitPrice)
			sum = sum.Add(it.LineSubtotal)
		}

		require.True(t, got.Subtotal.Equal(sum), "subtotal %s != sum %s", got.Subtotal, sum)

		expectedTax := sum.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(CurrencyPrecision)
		require.True(t, got.TaxAmount.Equal(expectedTax))
		require.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount)))
	}
}

func TestComputeTotalsWithDiscount(t *testing.T) {
	items := []models.InvoiceItem{
		item("Surgery", 1, "500000"),
	}

	got := ComputeTotalsWithDiscount(items, decimal.NewFromInt(19), decimal.NewFromInt(10))

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(450000)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(decimal.NewFromInt(85500)), "taxAmount = %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(535500)), "total = %s", got.Total)
}

func TestComputeTotalsWithZeroDiscountMatchesStandard(t *testing.T) {
	items := []models.InvoiceItem{
		item("Consultation", 1, "80000"),
		item("Vaccine", 2, "15000"),
	}
	std := ComputeTotals(items, decimal.NewFromInt(19))
	disc := ComputeTotalsWithDiscount(items, decimal.NewFromInt(19), decimal.Zero)

	assert.True(t, std.Subtotal.Equal(disc.Subtotal))
	assert.True(t, std.TaxAmount.Equal(disc.TaxAmount))
	assert.True(t, std.Total.Equal(disc.Total))
}
