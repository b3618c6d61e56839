// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view projects a session onto the UI contract: which auth-action
// elements are visible and which profile values are bound into which
// elements. Everything here is pure; the same input always yields the same
// output and applying a projection twice changes nothing.
package view

import (
	"github.com/MKhiriev/go-session-keeper/models"
)

// authClasses are the element classes whose visibility depends on the
// authentication state.
var authClasses = []string{
	models.ClassAuthLink,
	models.ClassLoginLink,
	models.ClassRegisterLink,
	models.ClassProfileLink,
	models.ClassLogoutLink,
}

// Project derives the UI view of session.
func Project(session models.Session) models.AuthView {
	authenticated := session.IsAuthenticated()

	v := models.AuthView{
		State:  models.AuthStateGuest,
		Links:  make(map[string]bool, len(authClasses)),
		Fields: map[string]string{},
	}

	v.Links[models.ClassLoginLink] = !authenticated
	v.Links[models.ClassRegisterLink] = !authenticated
	v.Links[models.ClassAuthLink] = authenticated
	v.Links[models.ClassProfileLink] = authenticated
	v.Links[models.ClassLogoutLink] = authenticated

	if !authenticated {
		return v
	}

	v.State = models.AuthStateAuthenticated
	for name := range session.Profile {
		value, _ := session.Profile.Field(name)
		v.Fields[name] = value
	}
	v.Username = session.Profile.Username()

	return v
}

// Apply writes v into doc. Auth-action elements are shown or hidden by
// class; an element carrying several auth classes is hidden if any of them
// is hidden. Profile-bound elements are hidden for guests and otherwise
// receive their field as text or input value, depending on their kind.
// Missing fields bind as "".
func Apply(doc models.Document, v models.AuthView) {
	for _, e := range doc {
		if e == nil {
			continue
		}

		if visible, ok := classVisibility(e, v); ok {
			e.Hidden = !visible
		}

		if e.UserField == "" {
			continue
		}

		value := ""
		if v.Authenticated() {
			value = v.Fields[e.UserField]
		}
		e.Hidden = !v.Authenticated()

		switch e.Kind {
		case models.ElementInput:
			e.Value = value
		default:
			e.Text = value
		}
	}
}

func classVisibility(e *models.Element, v models.AuthView) (visible bool, ok bool) {
	visible = true
	for _, class := range authClasses {
		if !e.HasClass(class) {
			continue
		}
		ok = true
		if !v.Links[class] {
			visible = false
		}
	}
	return visible, ok
}
