package pdf

import "quote-genius/go_backend/internal/domain/quote"

type Generator interface {
	Generate(doc quote.Document) ([]byte, error)
}
