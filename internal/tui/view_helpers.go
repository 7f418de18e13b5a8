package tui

import (
	"strings"
	"unicode/utf8"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// fieldRow renders one "label │ value" line padded to labelWidth.
func fieldRow(b *strings.Builder, marker bool, label string, labelWidth int, value string) {
	cursor := " "
	if marker {
		cursor = ">"
	}
	b.WriteString(cursor)
	b.WriteString(" ")
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", max(labelWidth-utf8.RuneCountInString(label), 0)))
	b.WriteString(" │ ")
	b.WriteString(value)
	b.WriteString("\n")
}

// fieldError renders a validation message under a field row.
func fieldError(b *strings.Builder, labelWidth int, msg string) {
	if msg == "" {
		return
	}
	b.WriteString(strings.Repeat(" ", labelWidth+2))
	b.WriteString(" │ ")
	b.WriteString(errorStyle.Render("! " + msg))
	b.WriteString("\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
