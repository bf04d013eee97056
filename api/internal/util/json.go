package util

import (
	"encoding/json"
	"fmt"
)

// LoadSchema decodes an embedded JSON schema and makes it strict for OpenAI structured output.
func LoadSchema(name, raw string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("bad %s schema: %w", name, err)
	}
	FixJSONSchemaStrict(m)
	return m, nil
}

// FixJSONSchemaStrict brings a schema to the strict form OpenAI expects: every node with
// properties becomes type=object, lists all properties as required and forbids extras.
func FixJSONSchemaStrict(node any) {
	switch n := node.(type) {
	case map[string]any:
		if props, ok := n["properties"].(map[string]any); ok {
			if _, hasType := n["type"]; !hasType {
				n["type"] = "object"
			}
			req := make([]any, 0, len(props))
			for k := range props {
				req = append(req, k)
			}
			n["required"] = req
			n["additionalProperties"] = false
			for _, v := range props {
				FixJSONSchemaStrict(v)
			}
		}
		if items, ok := n["items"]; ok {
			FixJSONSchemaStrict(items)
		}
		for _, k := range []string{"$defs", "definitions"} {
			if defs, ok := n[k].(map[string]any); ok {
				for _, v := range defs {
					FixJSONSchemaStrict(v)
				}
			}
		}
		for _, k := range []string{"oneOf", "anyOf", "allOf"} {
			if arr, ok := n[k].([]any); ok {
				for _, el := range arr {
					FixJSONSchemaStrict(el)
				}
			}
		}
	case []any:
		for _, v := range n {
			FixJSONSchemaStrict(v)
		}
	}
}
