package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"smart-checker/api/internal/llm"
	"smart-checker/api/internal/util"
)

const (
	DefaultModel   = "gpt-4.1-mini"
	DefaultBaseURL = "https://api.openai.com/v1"
)

// Engine talks to the OpenAI Responses API.
type Engine struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func New(key, model string) *Engine {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
	}
	return &Engine{
		APIKey:  strings.TrimSpace(key),
		Model:   model,
		BaseURL: DefaultBaseURL,
		// no overall timeout: the caller's context bounds the call
		httpc: &http.Client{Transport: tr},
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g., for custom timeouts or tracing).
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

func (e *Engine) WithBaseURL(u string) *Engine {
	if u = strings.TrimSpace(u); u != "" {
		e.BaseURL = strings.TrimRight(u, "/")
	}
	return e
}

func (e *Engine) Name() string     { return "openai" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Complete(ctx context.Context, in llm.Request) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is empty")
	}

	body := map[string]any{
		"model":       e.Model,
		"temperature": in.Temperature,
		"input": []any{
			map[string]any{"role": "system", "content": in.System},
			map[string]any{"role": "user", "content": in.User},
		},
	}
	if in.Schema != "" {
		schema, err := util.LoadSchema(in.SchemaName, in.Schema)
		if err != nil {
			return "", err
		}
		body["text"] = map[string]any{
			"format": map[string]any{
				"type":   "json_schema",
				"name":   in.SchemaName,
				"strict": true,
				"schema": schema,
			},
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/responses", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai %d: %s", resp.StatusCode, truncateBytes(raw, 512))
	}

	out := util.ExtractResponsesText(raw)
	if out == "" {
		return "", fmt.Errorf("openai: empty output; body=%s", truncateBytes(raw, 512))
	}
	return out, nil
}

func truncateBytes(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

var _ llm.Engine = (*Engine)(nil)
