// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	strongPasswordLength = 8
	maxStrengthScore     = 5

	strongPasswordFeedback = "Strong password!"
)

type strengthCheck struct {
	missing string
	passes  func(string) bool
}

// strengthChecks are evaluated in this order; Missing and Feedback follow it.
var strengthChecks = []strengthCheck{
	{missing: "at least 8 characters", passes: func(s string) bool { return utf8.RuneCountInString(s) >= strongPasswordLength }},
	{missing: "lowercase letter", passes: containsRuneIn('a', 'z')},
	{missing: "uppercase letter", passes: containsRuneIn('A', 'Z')},
	{missing: "number", passes: containsRuneIn('0', '9')},
	{missing: "special character", passes: containsSpecial},
}

// EvaluatePasswordStrength scores password from 0 to 5, one point per
// satisfied check. It is pure and total: the empty string scores 0 with all
// five categories missing.
func EvaluatePasswordStrength(password string) models.PasswordStrength {
	result := models.PasswordStrength{Max: maxStrengthScore}

	for _, check := range strengthChecks {
		if check.passes(password) {
			result.Score++
			continue
		}
		result.Missing = append(result.Missing, check.missing)
	}

	if len(result.Missing) == 0 {
		result.Feedback = strongPasswordFeedback
	} else {
		result.Feedback = "Add: " + strings.Join(result.Missing, ", ")
	}

	return result
}

func containsRuneIn(lo, hi rune) func(string) bool {
	return func(s string) bool {
		for _, r := range s {
			if r >= lo && r <= hi {
				return true
			}
		}
		return false
	}
}

// containsSpecial reports whether s has any rune outside [A-Za-z0-9].
func containsSpecial(s string) bool {
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return true
		}
	}
	return false
}
