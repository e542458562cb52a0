package gofpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-genius/go_backend/internal/domain/quote"
)

func testDocument(taxRate string) quote.Document {
	q := quote.NewDefault()
	q.Apply(quote.ScalarPatch{TaxRate: &taxRate})
	return q.Document()
}

func TestGenerate(t *testing.T) {
	gen := New()
	out, err := gen.Generate(testDocument("10"))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateWithoutTaxOrFooterBlocks(t *testing.T) {
	q := quote.NewDefault()
	empty := ""
	q.Apply(quote.ScalarPatch{Notes: &empty, Terms: &empty})
	q.RemoveItem(q.Items[0].ID)

	gen := New()
	out, err := gen.Generate(q.Document())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateNonASCIICurrency(t *testing.T) {
	q := quote.NewDefault()
	euro := "€"
	q.Apply(quote.ScalarPatch{Currency: &euro})

	gen := New()
	out, err := gen.Generate(q.Document())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
