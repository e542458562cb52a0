package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-genius/go_backend/internal/domain/quote"
)

func TestStoreCreateAndGet(t *testing.T) {
	st := NewStore()

	a := st.Create()
	b := st.Create()
	assert.NotEqual(t, a.ID, b.ID)

	got, ok := st.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestUpdateRedrivesDocument(t *testing.T) {
	s := NewStore().Create()

	doc, totals := s.View()
	require.Len(t, doc.Rows, 1)
	assert.InDelta(t, 150.0, totals.Subtotal, 1e-9)

	rate := "10"
	doc, totals = s.Update(func(q *quote.Quotation) {
		q.Apply(quote.ScalarPatch{TaxRate: &rate})
	})
	assert.Equal(t, "Tax (10%)", doc.TaxLabel)
	assert.InDelta(t, 15.0, totals.TaxAmount, 1e-9)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewStore().Create()
	snap := s.Snapshot()

	s.Update(func(q *quote.Quotation) { q.AddItem() })
	assert.Len(t, snap.Items, 1, "snapshot must not observe later edits")
}

func TestPerTargetBusyFlags(t *testing.T) {
	s := NewStore().Create()

	require.True(t, s.Acquire(TargetTerms))
	assert.False(t, s.Acquire(TargetTerms), "same target must be exclusive")

	// Other targets stay available while terms is in flight.
	assert.True(t, s.Acquire(TargetEmail))
	assert.True(t, s.Acquire(ItemTarget("abc")))
	assert.False(t, s.Acquire(ItemTarget("abc")))

	s.Release(TargetTerms)
	assert.True(t, s.Acquire(TargetTerms))
}
