// Package assist wraps the text-generation collaborator behind the three
// quotation operations: rewrite an item description, draft terms, draft a
// client email. Every operation is fail-soft: a collaborator failure degrades
// the output, it never propagates as an error and never blocks editing.
package assist

import (
	"context"
	"log/slog"
	"strings"

	"quote-genius/go_backend/internal/metrics"
)

// Generator is the single logical remote call: one prompt in, one text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	termsFailureMessage = "Error generating terms. Please try again."
	emailFailureMessage = "Error generating email."
)

type Service struct {
	gen    Generator
	logger *slog.Logger
}

func NewService(gen Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gen: gen, logger: logger}
}

// RewriteDescription returns a polished replacement for one line item
// description. On failure or an empty reply the original text comes back
// unchanged — the user just sees no change.
func (s *Service) RewriteDescription(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	out, err := s.gen.Generate(ctx, rewritePrompt(text))
	out = strings.TrimSpace(out)
	if err != nil || out == "" {
		s.logger.Warn("assist rewrite failed, keeping original", "error", err)
		metrics.AssistRequestsTotal.WithLabelValues("rewrite", "fallback").Inc()
		return text
	}
	metrics.AssistRequestsTotal.WithLabelValues("rewrite", "ok").Inc()
	return out
}

// DraftTerms returns standard terms content for the given business type.
// On failure the user sees a literal error string instead of silence.
func (s *Service) DraftTerms(ctx context.Context, businessType string) string {
	if strings.TrimSpace(businessType) == "" {
		return ""
	}
	out, err := s.gen.Generate(ctx, termsPrompt(businessType))
	if err != nil {
		s.logger.Warn("assist terms failed", "error", err)
		metrics.AssistRequestsTotal.WithLabelValues("terms", "error").Inc()
		return termsFailureMessage
	}
	metrics.AssistRequestsTotal.WithLabelValues("terms", "ok").Inc()
	return strings.TrimSpace(out)
}

// DraftEmail returns a short email body referencing the client, the formatted
// grand total and the business name. On failure the user sees a literal error
// string.
func (s *Service) DraftEmail(ctx context.Context, clientName, formattedTotal, businessName string) string {
	out, err := s.gen.Generate(ctx, emailPrompt(clientName, formattedTotal, businessName))
	if err != nil {
		s.logger.Warn("assist email failed", "error", err)
		metrics.AssistRequestsTotal.WithLabelValues("email", "error").Inc()
		return emailFailureMessage
	}
	metrics.AssistRequestsTotal.WithLabelValues("email", "ok").Inc()
	return strings.TrimSpace(out)
}
