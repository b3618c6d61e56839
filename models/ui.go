// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthState is the UI state derived from a [Session].
type AuthState int

const (
	// AuthStateGuest is shown when the token or the profile is missing.
	AuthStateGuest AuthState = iota
	// AuthStateAuthenticated is shown when both token and profile are stored.
	AuthStateAuthenticated
)

// String implements fmt.Stringer.
func (s AuthState) String() string {
	if s == AuthStateAuthenticated {
		return "authenticated"
	}
	return "guest"
}

// Element classes used to toggle auth-action visibility.
const (
	ClassAuthLink     = "auth-link"
	ClassLoginLink    = "login-link"
	ClassRegisterLink = "register-link"
	ClassProfileLink  = "profile-link"
	ClassLogoutLink   = "logout-link"
)

// ElementKind selects how a profile value is bound into an element.
type ElementKind int

const (
	// ElementText receives the raw profile value as its text.
	ElementText ElementKind = iota
	// ElementInput receives the profile value as its input value.
	ElementInput
)

// Element is one addressable piece of a page.
type Element struct {
	ID      string
	Label   string
	Classes []string
	// UserField names the profile field bound into this element
	// (the data-user-field attribute).
	UserField string
	Kind      ElementKind
	Text      string
	Value     string
	Hidden    bool
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Document is the ordered set of elements of a page.
type Document []*Element

// ByID returns the element with the given id or nil.
func (d Document) ByID(id string) *Element {
	for _, e := range d {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// AuthView is the pure projection of a [Session] onto the UI contract.
type AuthView struct {
	State AuthState
	// Links maps each auth-action class to its visibility.
	Links map[string]bool
	// Fields holds the profile values to bind, keyed by field name.
	// Empty for guests.
	Fields map[string]string
	// Username is the display name of the signed-in user, "" for guests.
	Username string
}

// Authenticated reports whether the view is in the authenticated state.
func (v AuthView) Authenticated() bool {
	return v.State == AuthStateAuthenticated
}
