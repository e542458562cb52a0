package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"quote-genius/go_backend/internal/app/session"
	"quote-genius/go_backend/internal/domain/quote"
)

// RewriteItem asks the collaborator for a polished description and applies it
// through the ordinary edit path. A failure keeps the original text; either
// way the busy flag clears and the fresh document comes back.
func (h *Handlers) RewriteItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "itemID")

	target := session.ItemTarget(itemID)
	if !s.Acquire(target) {
		errorJSON(w, http.StatusConflict, "rewrite already in flight for this item")
		return
	}
	defer s.Release(target)

	snap := s.Snapshot()
	item, found := snap.Item(itemID)
	if !found {
		// Absent item id: same silent no-op the model applies to edits.
		doc, totals := s.View()
		writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
		return
	}

	rewritten := h.Assist.RewriteDescription(r.Context(), item.Description)
	var doc quote.Document
	var totals quote.Totals
	if rewritten != "" {
		doc, totals = s.Update(func(q *quote.Quotation) {
			q.ApplyItem(itemID, quote.ItemPatch{Description: &rewritten})
		})
	} else {
		doc, totals = s.View()
	}
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

type generateTermsRequest struct {
	BusinessType string `json:"business_type"`
}

func (h *Handlers) GenerateTerms(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req generateTermsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "bad request")
		return
	}
	if strings.TrimSpace(req.BusinessType) == "" {
		errorJSON(w, http.StatusBadRequest, "business_type is required")
		return
	}

	if !s.Acquire(session.TargetTerms) {
		errorJSON(w, http.StatusConflict, "terms generation already in flight")
		return
	}
	defer s.Release(session.TargetTerms)

	terms := h.Assist.DraftTerms(r.Context(), req.BusinessType)
	var doc quote.Document
	var totals quote.Totals
	if terms != "" {
		doc, totals = s.Update(func(q *quote.Quotation) {
			q.Apply(quote.ScalarPatch{Terms: &terms})
		})
	} else {
		doc, totals = s.View()
	}
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

// DraftEmail returns the drafted body without touching the quotation; the
// email is presented to the user, never stored on the model.
func (h *Handlers) DraftEmail(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if !s.Acquire(session.TargetEmail) {
		errorJSON(w, http.StatusConflict, "email draft already in flight")
		return
	}
	defer s.Release(session.TargetEmail)

	snap := s.Snapshot()
	formattedTotal := quote.FormatMoney(snap.Currency, snap.ComputeTotals().Total)
	email := h.Assist.DraftEmail(r.Context(), snap.Client.Name, formattedTotal, snap.Business.Name)
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}
