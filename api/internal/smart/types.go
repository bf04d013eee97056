// Package smart holds the SMART rubric model shared by the endpoint and its front ends.
package smart

import "strings"

// Key names one SMART criterion as it appears on the wire.
type Key string

const (
	Specific   Key = "specific"
	Measurable Key = "measurable"
	Achievable Key = "achievable"
	Relevant   Key = "relevant"
	TimeBound  Key = "time_bound"
)

// Keys lists the five criteria in display order.
var Keys = []Key{Specific, Measurable, Achievable, Relevant, TimeBound}

// Score is the per-criterion grade: 0 missing/unclear, 1 partially present, 2 clearly present.
type Score int

const (
	ScoreMissing Score = 0
	ScorePartial Score = 1
	ScoreStrong  Score = 2
)

func (s Score) Valid() bool { return s >= ScoreMissing && s <= ScoreStrong }

type Criterion struct {
	Score    Score  `json:"score"`
	Evidence string `json:"evidence"` // verbatim quote from the objective, or ""
	Feedback string `json:"feedback"`
}

// Result is one evaluation. The struct shape guarantees exactly five keys on the wire.
type Result struct {
	Specific   Criterion `json:"specific"`
	Measurable Criterion `json:"measurable"`
	Achievable Criterion `json:"achievable"`
	Relevant   Criterion `json:"relevant"`
	TimeBound  Criterion `json:"time_bound"`
}

// Get returns the criterion stored under k. Unknown keys yield the zero criterion.
func (r Result) Get(k Key) Criterion {
	if p := r.field(k); p != nil {
		return *p
	}
	return Criterion{}
}

func (r *Result) set(k Key, c Criterion) {
	if p := r.field(k); p != nil {
		*p = c
	}
}

func (r *Result) field(k Key) *Criterion {
	switch k {
	case Specific:
		return &r.Specific
	case Measurable:
		return &r.Measurable
	case Achievable:
		return &r.Achievable
	case Relevant:
		return &r.Relevant
	case TimeBound:
		return &r.TimeBound
	}
	return nil
}

// Validate checks that every score is one of 0, 1, 2.
func (r Result) Validate() error {
	for _, k := range Keys {
		if s := r.Get(k).Score; !s.Valid() {
			return &SchemaError{Key: k, Reason: "score out of range"}
		}
	}
	return nil
}

// UnquotedEvidence returns the criteria whose non-empty evidence is not a substring of objective.
func (r Result) UnquotedEvidence(objective string) []Key {
	var out []Key
	for _, k := range Keys {
		ev := r.Get(k).Evidence
		if ev != "" && !strings.Contains(objective, ev) {
			out = append(out, k)
		}
	}
	return out
}
