package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"quote-genius/go_backend/internal/app/session"
	"quote-genius/go_backend/internal/domain/assist"
	"quote-genius/go_backend/internal/domain/quote"
	"quote-genius/go_backend/internal/domain/quote/pdf"
)

type Handlers struct {
	Store  *session.Store
	Assist *assist.Service
	PDF    pdf.Generator
	Logger *slog.Logger
}

func New(store *session.Store, assistSvc *assist.Service, pdfGen pdf.Generator, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		Store:  store,
		Assist: assistSvc,
		PDF:    pdfGen,
		Logger: logger,
	}
}

// quoteResponse is the body of every session read and every successful
// mutation: the re-derived document plus raw totals.
type quoteResponse struct {
	ID       string         `json:"id"`
	Document quote.Document `json:"document"`
	Totals   quote.Totals   `json:"totals"`
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "quoteID")
	s, ok := h.Store.Get(id)
	if !ok {
		errorJSON(w, http.StatusNotFound, "quote not found")
		return nil, false
	}
	return s, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
