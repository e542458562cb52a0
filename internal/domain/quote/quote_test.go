package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewDefault(t *testing.T) {
	q := NewDefault()

	assert.Equal(t, "$", q.Currency)
	assert.Zero(t, q.TaxRate)
	assert.Equal(t, "My Awesome Business", q.Business.Name)
	assert.Empty(t, q.Client.Name)

	require.Len(t, q.Items, 1)
	assert.Equal(t, "Consulting Services", q.Items[0].Description)
	assert.Equal(t, 1.0, q.Items[0].Quantity)
	assert.Equal(t, 150.0, q.Items[0].UnitPrice)

	date, err := time.Parse("2006-01-02", q.Date)
	require.NoError(t, err)
	due, err := time.Parse("2006-01-02", q.DueDate)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, due.Sub(date))
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Inf", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseNumber(tc.in), "input %q", tc.in)
	}
}

func TestAddItemDefaultsAndUniqueIDs(t *testing.T) {
	q := NewDefault()

	it := q.AddItem()
	assert.Equal(t, "New Item", it.Description)
	assert.Equal(t, 1.0, it.Quantity)
	assert.Zero(t, it.UnitPrice)

	seen := make(map[string]bool)
	for _, existing := range q.Items {
		seen[existing.ID] = true
	}
	// Burst of additions within the same instant must still yield distinct ids.
	for i := 0; i < 100; i++ {
		added := q.AddItem()
		assert.False(t, seen[added.ID], "duplicate item id %s", added.ID)
		seen[added.ID] = true
	}
}

func TestRemoveItem(t *testing.T) {
	q := NewDefault()
	a := q.AddItem()
	b := q.AddItem()

	q.RemoveItem(a.ID)
	_, found := q.Item(a.ID)
	assert.False(t, found)
	_, found = q.Item(b.ID)
	assert.True(t, found)

	// Absent id is a silent no-op.
	before := len(q.Items)
	q.RemoveItem("nope")
	assert.Len(t, q.Items, before)
}

func TestRemovedItemsDoNotContribute(t *testing.T) {
	q := &Quotation{Currency: "$"}
	a := q.AddItem()
	q.ApplyItem(a.ID, ItemPatch{Quantity: strPtr("3"), UnitPrice: strPtr("10")})
	b := q.AddItem()
	q.ApplyItem(b.ID, ItemPatch{Quantity: strPtr("2"), UnitPrice: strPtr("5")})

	assert.InDelta(t, 40, q.ComputeTotals().Subtotal, 1e-9)

	q.RemoveItem(a.ID)
	assert.InDelta(t, 10, q.ComputeTotals().Subtotal, 1e-9)

	// Re-added values contribute fully again.
	c := q.AddItem()
	q.ApplyItem(c.ID, ItemPatch{Quantity: strPtr("3"), UnitPrice: strPtr("10")})
	assert.InDelta(t, 40, q.ComputeTotals().Subtotal, 1e-9)
}

func TestApplyItemCoercion(t *testing.T) {
	q := NewDefault()
	id := q.Items[0].ID

	q.ApplyItem(id, ItemPatch{Quantity: strPtr("not a number"), UnitPrice: strPtr("")})
	it, _ := q.Item(id)
	assert.Zero(t, it.Quantity)
	assert.Zero(t, it.UnitPrice)

	totals := q.ComputeTotals()
	assert.False(t, totals.Subtotal != totals.Subtotal, "subtotal must not be NaN")
	assert.Zero(t, totals.Subtotal)

	// Absent id is a silent no-op.
	q.ApplyItem("missing", ItemPatch{Description: strPtr("x")})
}

func TestApplyScalarPatch(t *testing.T) {
	q := NewDefault()

	q.Apply(ScalarPatch{
		Currency: strPtr("€"),
		TaxRate:  strPtr("12.5"),
		Notes:    strPtr(""),
		Business: &BusinessPatch{Name: strPtr("Acme GmbH")},
		Client:   &ClientPatch{Name: strPtr("Jane"), Company: strPtr("Jane Ltd")},
	})

	assert.Equal(t, "€", q.Currency)
	assert.Equal(t, 12.5, q.TaxRate)
	assert.Empty(t, q.Notes)
	assert.Equal(t, "Acme GmbH", q.Business.Name)
	assert.Equal(t, "Jane", q.Client.Name)
	assert.Equal(t, "Jane Ltd", q.Client.Company)
	// Untouched fields keep their values.
	assert.Equal(t, "contact@mybusiness.com", q.Business.Email)

	q.Apply(ScalarPatch{TaxRate: strPtr("garbage")})
	assert.Zero(t, q.TaxRate)
}

func TestComputeTotalsScenario(t *testing.T) {
	// Default quotation, add a 2 x 50.00 item, set tax to 10%.
	q := NewDefault()
	it := q.AddItem()
	q.ApplyItem(it.ID, ItemPatch{Quantity: strPtr("2"), UnitPrice: strPtr("50.00")})
	q.Apply(ScalarPatch{TaxRate: strPtr("10")})

	totals := q.ComputeTotals()
	assert.InDelta(t, 250.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 25.0, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 275.0, totals.Total, 1e-9)
}

func TestComputeTotalsEmpty(t *testing.T) {
	q := NewDefault()
	q.Apply(ScalarPatch{TaxRate: strPtr("20")})
	q.RemoveItem(q.Items[0].ID)

	totals := q.ComputeTotals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.Total)
}

func TestTaxProportionality(t *testing.T) {
	q := &Quotation{TaxRate: 7.25}
	it := q.AddItem()
	q.ApplyItem(it.ID, ItemPatch{Quantity: strPtr("3"), UnitPrice: strPtr("19.99")})

	totals := q.ComputeTotals()
	assert.InDelta(t, totals.Subtotal*7.25/100, totals.TaxAmount, 1e-9)
	assert.InDelta(t, totals.Subtotal+totals.TaxAmount, totals.Total, 1e-9)
}
