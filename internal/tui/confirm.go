// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func (s styles) renderConfirm(prompt string) string {
	content := prompt + "\n\n"
	content += s.help.Render("y/enter: yes    n/esc: no")
	return s.overlay.Render(content)
}

// answer delivers the user's choice without ever blocking the UI loop.
func (c confirmMsg) answer(yes bool) {
	select {
	case c.reply <- yes:
	default:
	}
}
