package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"quote-genius/go_backend/internal/domain/quote"
)

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	s := h.Store.Create()
	doc, totals := s.View()
	writeJSON(w, http.StatusCreated, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	doc, totals := s.View()
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

func (h *Handlers) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var patch quote.ScalarPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		errorJSON(w, http.StatusBadRequest, "bad request")
		return
	}
	doc, totals := s.Update(func(q *quote.Quotation) { q.Apply(patch) })
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	doc, totals := s.Update(func(q *quote.Quotation) { q.AddItem() })
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var patch quote.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		errorJSON(w, http.StatusBadRequest, "bad request")
		return
	}
	itemID := chi.URLParam(r, "itemID")
	doc, totals := s.Update(func(q *quote.Quotation) { q.ApplyItem(itemID, patch) })
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

func (h *Handlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "itemID")
	doc, totals := s.Update(func(q *quote.Quotation) { q.RemoveItem(itemID) })
	writeJSON(w, http.StatusOK, quoteResponse{ID: s.ID, Document: doc, Totals: totals})
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	doc, _ := s.View()
	pdfBytes, err := h.PDF.Generate(doc)
	if err != nil {
		h.Logger.Error("pdf generation failed", "quote", s.ID, "error", err)
		errorJSON(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	snap := s.Snapshot()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snap.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func (h *Handlers) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, quote.Currencies)
}
