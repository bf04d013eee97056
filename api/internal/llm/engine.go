// Package llm adapts hosted text-generation providers to one call shape.
package llm

import (
	"context"
	"errors"
	"strings"
)

// Request is a single system+user completion.
type Request struct {
	System      string
	User        string
	Temperature float32

	// Optional JSON schema constraining the output; providers without schema support
	// fall back to plain JSON mode.
	SchemaName string
	Schema     string
}

// Engine returns the raw text the model produced for a request.
type Engine interface {
	Name() string
	GetModel() string
	Complete(ctx context.Context, req Request) (string, error)
}

type Engines struct {
	OpenAI Engine
	Gemini Engine
}

var ErrUnknownProvider = errors.New("unknown llm provider; use 'openai' or 'gemini'")

// GetEngine picks an engine by provider name. An empty name selects OpenAI.
func (e *Engines) GetEngine(provider string) (Engine, error) {
	var eng Engine
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "gpt", "openai":
		eng = e.OpenAI
	case "gemini":
		eng = e.Gemini
	default:
		return nil, ErrUnknownProvider
	}
	if eng == nil {
		return nil, errors.New("llm provider " + provider + " is not configured")
	}
	return eng, nil
}
