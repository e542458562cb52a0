// Package mock provides a canned assist.Generator for tests and keyless
// development.
package mock

import (
	"context"
	"sync"
	"time"
)

// Generator returns Response (or Err) for every prompt. A non-zero Delay
// simulates the network round trip. Calls and Prompts track usage for tests.
type Generator struct {
	Response string
	Err      error
	Delay    time.Duration

	mu      sync.Mutex
	Calls   int
	Prompts []string
}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.Calls++
	g.Prompts = append(g.Prompts, prompt)
	g.mu.Unlock()

	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if g.Err != nil {
		return "", g.Err
	}
	if g.Response != "" {
		return g.Response, nil
	}
	return "Professional services delivered with care, tailored to your goals.", nil
}

// LastPrompt returns the most recent prompt, or "" when none were issued.
func (g *Generator) LastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Prompts) == 0 {
		return ""
	}
	return g.Prompts[len(g.Prompts)-1]
}
