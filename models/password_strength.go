// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordStrength is the result of evaluating a candidate password.
type PasswordStrength struct {
	Score int
	Max   int
	// Missing lists the unmet categories in evaluation order.
	Missing  []string
	Feedback string
}

// Label maps the score to a coarse human label.
func (p PasswordStrength) Label() string {
	switch {
	case p.Score <= 2:
		return "weak"
	case p.Score <= 4:
		return "medium"
	default:
		return "strong"
	}
}
