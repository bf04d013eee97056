package smart

// MockResult is the fixed evaluation returned in mock mode, whatever the objective says.
func MockResult() Result {
	return Result{
		Specific: Criterion{
			Score:    ScorePartial,
			Evidence: "Introduce a new HR system",
			Feedback: "Clarify exactly which HR process and user group the system targets.",
		},
		Measurable: Criterion{
			Score:    ScoreMissing,
			Evidence: "",
			Feedback: "No measurable outcome is stated. Add a metric, baseline, and target.",
		},
		Achievable: Criterion{
			Score:    ScorePartial,
			Evidence: "Introduce a new HR system",
			Feedback: "Explain why this is feasible within current resources and constraints.",
		},
		Relevant: Criterion{
			Score:    ScorePartial,
			Evidence: "improve HR processes",
			Feedback: "Link the goal to a clear business or people outcome (e.g. compliance, efficiency).",
		},
		TimeBound: Criterion{
			Score:    ScoreMissing,
			Evidence: "",
			Feedback: "Add a deadline or timeframe (e.g. by end of Q3 2026).",
		},
	}
}
