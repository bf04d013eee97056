package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"smart-checker/api/internal/llm"
)

const DefaultModel = "gemini-2.5-flash"

type Engine struct {
	APIKey string
	Model  string
	opts   []option.ClientOption
}

func New(apiKey, model string, opts ...option.ClientOption) *Engine {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
		opts:   opts,
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Complete(ctx context.Context, in llm.Request) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	opts := append([]option.ClientOption{option.WithAPIKey(e.APIKey)}, e.opts...)
	cl, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(in.Temperature),
	}
	if in.Schema != "" {
		m.GenerationConfig.ResponseMIMEType = "application/json"
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(in.System)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(in.User))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	out := collectText(resp)
	if out == "" {
		return "", errors.New("gemini: empty response")
	}
	return out, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

func ptrFloat32(v float32) *float32 { return &v }

var _ llm.Engine = (*Engine)(nil)
