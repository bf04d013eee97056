package util

import (
	"encoding/json"
	"strings"
)

// StripCodeFences removes a markdown fence (```json ... ```) the model may wrap around JSON.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "{[") {
		s = s[i+1:] // language tag line
	} else {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "json"), "JSON")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ExtractResponsesText pulls the model text out of an OpenAI Responses API envelope.
// It prefers `output_text` and otherwise joins the text segments of `output[].content[]`.
func ExtractResponsesText(raw []byte) string {
	type content struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	type output struct {
		Type    string    `json:"type"`
		Role    string    `json:"role,omitempty"`
		Content []content `json:"content"`
	}
	var env struct {
		Output     []output `json:"output"`
		OutputText string   `json:"output_text"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	if s := strings.TrimSpace(env.OutputText); s != "" {
		return s
	}

	var b strings.Builder
	for _, o := range env.Output {
		for _, c := range o.Content {
			if strings.TrimSpace(c.Text) == "" {
				continue
			}
			// both `output_text` and `text` are seen in practice
			if c.Type == "output_text" || c.Type == "text" || c.Type == "" {
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(c.Text)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
