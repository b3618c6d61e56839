// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/models"
)

// route is a parsed navigation target.
type route struct {
	target string
	path   string
	query  url.Values
}

func parseRoute(target string) route {
	target = strings.TrimSpace(target)
	if target == "" {
		target = models.RouteRoot
	}

	r := route{target: target, path: target, query: url.Values{}}
	u, err := url.Parse(target)
	if err != nil {
		return r
	}
	if u.Path != "" {
		r.path = u.Path
	}
	r.query = u.Query()
	return r
}

// timedOut reports whether the route carries the inactivity flag.
func (r route) timedOut() bool {
	return r.query.Get("timeout") == "true"
}

// page is one screen of the router.
type page interface {
	tea.Model
	// Bind applies the session view to the page's elements.
	Bind(v models.AuthView)
	// Open is called every time the router switches to the page.
	Open(r route) tea.Cmd
}
