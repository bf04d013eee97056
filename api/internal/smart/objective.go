package smart

import "unicode/utf16"

// MinObjectiveLen is the shortest objective, in characters, the endpoint accepts.
const MinObjectiveLen = 10

// ObjectiveLen counts characters the way the browser form does: UTF-16 code units,
// so a character outside the Basic Multilingual Plane counts twice.
func ObjectiveLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ValidateObjective rejects objectives that are empty or shorter than MinObjectiveLen.
// The text is not trimmed and has no upper bound.
func ValidateObjective(objective string) error {
	if ObjectiveLen(objective) < MinObjectiveLen {
		return ErrValidation
	}
	return nil
}
