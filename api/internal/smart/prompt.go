package smart

// SystemPrompt is sent verbatim as the system message of every model call.
const SystemPrompt = `
You are an assessor evaluating a business-case objective for introducing an HRM system.

Use ONLY the text provided by the learner.
Do NOT infer missing information.
Do NOT be generous.

Evaluate the objective against SMART criteria.

Return ONLY valid JSON in the following structure:

{
  "specific": { "score": 0, "evidence": "", "feedback": "" },
  "measurable": { "score": 0, "evidence": "", "feedback": "" },
  "achievable": { "score": 0, "evidence": "", "feedback": "" },
  "relevant": { "score": 0, "evidence": "", "feedback": "" },
  "time_bound": { "score": 0, "evidence": "", "feedback": "" }
}

Scoring rules:
- Score 0 = missing or unclear
- Score 1 = partially present
- Score 2 = clearly present

For each element:
- "evidence" must quote a short phrase from the learner text, or be empty if missing.
- "feedback" must explain what is missing or how to improve.

Never add extra fields.
Never include commentary outside JSON.
`

// ResultSchemaName labels ResultSchema in structured-output requests.
const ResultSchemaName = "smart_result"

// ResultSchema describes Result for providers that support JSON-schema constrained output.
const ResultSchema = `{
  "type": "object",
  "properties": {
    "specific":   { "$ref": "#/$defs/criterion" },
    "measurable": { "$ref": "#/$defs/criterion" },
    "achievable": { "$ref": "#/$defs/criterion" },
    "relevant":   { "$ref": "#/$defs/criterion" },
    "time_bound": { "$ref": "#/$defs/criterion" }
  },
  "$defs": {
    "criterion": {
      "type": "object",
      "properties": {
        "score":    { "type": "integer", "enum": [0, 1, 2] },
        "evidence": { "type": "string" },
        "feedback": { "type": "string" }
      }
    }
  }
}`
