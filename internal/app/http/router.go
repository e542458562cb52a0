package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quote-genius/go_backend/internal/app/config"
	"quote-genius/go_backend/internal/app/http/handlers"
	"quote-genius/go_backend/internal/app/http/middleware"
	"quote-genius/go_backend/internal/app/session"
	"quote-genius/go_backend/internal/domain/assist"
	"quote-genius/go_backend/internal/domain/quote/pdf"
)

func NewRouter(cfg config.Config, logger *slog.Logger, store *session.Store, assistSvc *assist.Service, pdfGen pdf.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(store, assistSvc, pdfGen, logger)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/currencies", h.ListCurrencies)

		r.Post("/quotes", h.CreateQuote)
		r.Route("/quotes/{quoteID}", func(r chi.Router) {
			r.Get("/", h.GetQuote)
			r.Patch("/", h.UpdateQuote)
			r.Get("/pdf", h.QuotePDF)

			r.Post("/items", h.AddItem)
			r.Patch("/items/{itemID}", h.UpdateItem)
			r.Delete("/items/{itemID}", h.RemoveItem)

			r.Post("/items/{itemID}/rewrite", h.RewriteItem)
			r.Post("/terms", h.GenerateTerms)
			r.Post("/email", h.DraftEmail)
		})
	})

	return r
}
