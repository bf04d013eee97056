package form

import (
	"fmt"

	"smart-checker/api/internal/smart"
)

// Placeholder stands in for empty evidence or feedback.
const Placeholder = "—"

// Disclaimer is printed under every rendered result.
const Disclaimer = "This is formative feedback. It only awards points when evidence is present in your text."

var labels = map[smart.Key]string{
	smart.Specific:   "Specific",
	smart.Measurable: "Measurable",
	smart.Achievable: "Achievable",
	smart.Relevant:   "Relevant",
	smart.TimeBound:  "Time-bound",
}

// Label is the human name of a criterion.
func Label(k smart.Key) string { return labels[k] }

// Tier names a score. Anything but 1 or 2 reads as Missing.
func Tier(s smart.Score) string {
	switch s {
	case smart.ScoreStrong:
		return "Strong"
	case smart.ScorePartial:
		return "Partial"
	default:
		return "Missing"
	}
}

// ScoreBadge renders a score as "<score>/2 — <tier>".
func ScoreBadge(s smart.Score) string {
	return fmt.Sprintf("%d/2 — %s", s, Tier(s))
}

// Row is one line of the results table.
type Row struct {
	Key      smart.Key
	Label    string
	Score    smart.Score
	Badge    string
	Evidence string
	Feedback string
}

// EvidenceText is the quoted evidence, or the placeholder when there is none.
func (r Row) EvidenceText() string {
	if r.Evidence == "" {
		return Placeholder
	}
	return "“" + r.Evidence + "”"
}

// FeedbackText is the feedback, or the placeholder when there is none.
func (r Row) FeedbackText() string {
	if r.Feedback == "" {
		return Placeholder
	}
	return r.Feedback
}

// Rows lays a result out as the five table rows in fixed order.
func Rows(res smart.Result) []Row {
	rows := make([]Row, 0, len(smart.Keys))
	for _, k := range smart.Keys {
		c := res.Get(k)
		rows = append(rows, Row{
			Key:      k,
			Label:    Label(k),
			Score:    c.Score,
			Badge:    ScoreBadge(c.Score),
			Evidence: c.Evidence,
			Feedback: c.Feedback,
		})
	}
	return rows
}
