package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smart-checker/api/internal/smart"
)

// ScorePath is the evaluation endpoint relative to the server root.
const ScorePath = "/api/score-smart"

// Client is a Checker that calls a running server over HTTP.
type Client struct {
	BaseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

func (c *Client) Check(ctx context.Context, objective string) (smart.Result, error) {
	payload, err := json.Marshal(map[string]string{"objective": objective})
	if err != nil {
		return smart.Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+ScorePath, bytes.NewReader(payload))
	if err != nil {
		return smart.Result{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return smart.Result{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return smart.Result{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return smart.Result{}, fmt.Errorf("%w: status %d with unreadable body", ErrUnreachable, resp.StatusCode)
		}
		return smart.Result{}, &ServerError{Status: resp.StatusCode, Message: env.Error}
	}

	// absent criteria decode as score 0 and render with placeholders
	var res smart.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return smart.Result{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return res, nil
}
