// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-session-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (s styles) renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(s.title.Render(title))
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

	help := "ctrl+t: theme │ ctrl+c: quit"
	if strings.TrimSpace(hotKeys) != "" {
		help = hotKeys + " │ " + help
	}
	b.WriteString("  ")
	b.WriteString(s.help.Render(help))

	return b.String()
}

// renderElements writes the visible elements of doc as "Label │ value"
// rows.
func renderElements(doc models.Document) string {
	width := 0
	for _, e := range doc {
		if !e.Hidden && len(e.Label) > width {
			width = len(e.Label)
		}
	}

	var b strings.Builder
	for _, e := range doc {
		if e.Hidden {
			continue
		}
		value := e.Text
		if e.Kind == models.ElementInput {
			value = "[" + e.Value + "]"
		}
		b.WriteString(e.Label)
		b.WriteString(strings.Repeat(" ", width-len(e.Label)))
		b.WriteString(" │ ")
		b.WriteString(valueOrDash(value))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
