// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationLevel is the severity of a toast.
type NotificationLevel int

const (
	NotificationInfo NotificationLevel = iota
	NotificationSuccess
	NotificationWarning
	NotificationError
)

// String implements fmt.Stringer.
func (l NotificationLevel) String() string {
	switch l {
	case NotificationSuccess:
		return "success"
	case NotificationWarning:
		return "warning"
	case NotificationError:
		return "error"
	default:
		return "info"
	}
}

// Notification scopes. A new notification replaces the previous one in the
// same scope.
const (
	ScopeLogin    = "login"
	ScopeRegister = "register"
	ScopeSession  = "session"
	ScopeGlobal   = "global"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Scope   string
	Level   NotificationLevel
	Message string
}
