package smart

import (
	"encoding/json"
	"fmt"
)

// DecodeResult parses model output strictly: exactly the five criterion keys, each an object
// with an integer score in 0..2 and optional string evidence/feedback, nothing else.
func DecodeResult(b []byte) (Result, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return Result{}, fmt.Errorf("bad JSON: %w", err)
	}
	if top == nil {
		return Result{}, &SchemaError{Reason: "not an object"}
	}

	var r Result
	for _, k := range Keys {
		raw, ok := top[string(k)]
		if !ok {
			return Result{}, &SchemaError{Key: k, Reason: "missing"}
		}
		c, err := decodeCriterion(k, raw)
		if err != nil {
			return Result{}, err
		}
		r.set(k, c)
	}
	if len(top) != len(Keys) {
		for name := range top {
			if !isKey(name) {
				return Result{}, &SchemaError{Reason: fmt.Sprintf("unexpected key %q", name)}
			}
		}
	}
	return r, r.Validate()
}

func decodeCriterion(k Key, raw json.RawMessage) (Criterion, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Criterion{}, &SchemaError{Key: k, Reason: err.Error()}
	}
	if fields == nil {
		return Criterion{}, &SchemaError{Key: k, Reason: "not an object"}
	}

	var (
		c     Criterion
		score *int
	)
	// names are matched exactly; encoding/json would fold case
	for name, v := range fields {
		var err error
		switch name {
		case "score":
			err = json.Unmarshal(v, &score)
		case "evidence":
			err = unmarshalString(v, &c.Evidence)
		case "feedback":
			err = unmarshalString(v, &c.Feedback)
		default:
			return Criterion{}, &SchemaError{Key: k, Reason: fmt.Sprintf("unknown field %q", name)}
		}
		if err != nil {
			return Criterion{}, &SchemaError{Key: k, Reason: name + ": " + err.Error()}
		}
	}
	if score == nil {
		return Criterion{}, &SchemaError{Key: k, Reason: "score missing"}
	}
	c.Score = Score(*score)
	return c, nil
}

// unmarshalString accepts a JSON string or null.
func unmarshalString(v json.RawMessage, dst *string) error {
	var p *string
	if err := json.Unmarshal(v, &p); err != nil {
		return err
	}
	if p != nil {
		*dst = *p
	}
	return nil
}

func isKey(name string) bool {
	for _, k := range Keys {
		if string(k) == name {
			return true
		}
	}
	return false
}
