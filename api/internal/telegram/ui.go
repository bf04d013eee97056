package telegram

import (
	"strings"
	"unicode/utf8"

	"smart-checker/api/internal/form"
)

// maxFieldRunes caps evidence and feedback so five rows stay under Telegram's message limit.
const maxFieldRunes = 350

// RenderMarkdown lays rows out as a legacy-Markdown chat message. Texts are clipped
// before escaping, so escapes and bold markers stay intact.
func RenderMarkdown(rows []form.Row) string {
	return render(rows, esc, func(s string) string { return "*" + s + "*" })
}

// RenderPlain is the same message without markup.
func RenderPlain(rows []form.Row) string {
	noop := func(s string) string { return s }
	return render(rows, noop, noop)
}

func render(rows []form.Row, escape, bold func(string) string) string {
	var b strings.Builder
	b.WriteString(bold("SMART feedback"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(bold(escape(r.Label)))
		b.WriteString(": ")
		b.WriteString(escape(r.Badge))
		b.WriteString("\nEvidence: ")
		b.WriteString(escape(clip(r.EvidenceText())))
		b.WriteString("\nHow to improve: ")
		b.WriteString(escape(clip(r.FeedbackText())))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(escape(form.Disclaimer))
	return b.String()
}

func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxFieldRunes {
		return s
	}
	return string([]rune(s)[:maxFieldRunes]) + "…"
}

// esc escapes the legacy Markdown markers Telegram would otherwise parse.
func esc(s string) string {
	s = strings.ReplaceAll(s, "`", "'")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "[", "\\[")
	return s
}
