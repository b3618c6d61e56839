// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/notify"
	"github.com/MKhiriev/go-session-keeper/models"
)

// RootModel is the TUI router:
//  1. keeps the active page and re-runs the session bootstrap on every
//     navigation, then binds the result into every page,
//  2. reports key and mouse input to the event bus as user activity,
//  3. owns the confirmation modal and the notification board,
//  4. delegates all other messages to the active page.
type RootModel struct {
	d *deps

	pages   map[string]page
	current page
	route   route
	view    models.AuthView

	board    *notify.Board
	confirms []confirmMsg
	boot     *bootstrapSeq

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startTarget.
func NewRootModel(d *deps, pages map[string]page, startTarget string, board *notify.Board, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		d:         d,
		pages:     pages,
		route:     parseRoute(startTarget),
		board:     board,
		boot:      &bootstrapSeq{},
		buildInfo: buildInfo,
	}
	r.current = r.pageFor(r.route)
	return r
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdBootstrap(), r.cmdLoadPrefs()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init(), r.current.Open(r.route))
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		r.d.emit(events.KeyDown, msg.String())

		if key.Matches(msg, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if len(r.confirms) > 0 {
			return r.updateConfirm(msg)
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if key.Matches(msg, keys.theme) {
			return r, r.cmdToggleTheme()
		}
		if key.Matches(msg, keys.version) && r.isMenuPage() {
			r.showBuildInfo = true
			return r, nil
		}

	case tea.MouseMsg:
		if kind, ok := mouseActivity(msg); ok {
			r.d.emit(kind, "")
		}
		if len(r.confirms) > 0 {
			return r, nil
		}

	case navigateMsg:
		return r.navigate(msg.target)

	case storeChangedMsg:
		return r, r.cmdBootstrap()

	case bootstrapMsg:
		if msg.seq < r.boot.applied {
			r.d.logger.Debug().Str("func", "RootModel.Update").Uint64("seq", msg.seq).Msg("dropping stale bootstrap")
			return r, nil
		}
		r.boot.applied = msg.seq
		if msg.err != nil {
			r.d.logger.Err(msg.err).Str("func", "RootModel.Update").Msg("bootstrap failed, showing guest view")
		}
		r.view = msg.view
		for _, p := range r.pages {
			p.Bind(r.view)
		}
		return r, nil

	case notifyMsg:
		entry := r.board.Show(msg.notification)
		return r, cmdDismiss(r.board.TTL(), entry)

	case dismissMsg:
		r.board.Dismiss(msg.scope, msg.id)
		return r, nil

	case confirmMsg:
		r.confirms = append(r.confirms, msg)
		return r, nil

	case confirmCancelMsg:
		r.confirms = withoutConfirm(r.confirms, msg.reply)
		return r, nil

	case prefsMsg:
		if msg.err != nil {
			r.d.logger.Warn().Err(msg.err).Str("func", "RootModel.Update").Msg("preferences unavailable")
		}
		r.d.st = newStyles(msg.prefs.Theme)
		return r, nil

	case tickMsg:
		r.board.Sweep()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	if p, ok := updated.(page); ok {
		r.current = p
	}
	return r, cmd
}

func (r RootModel) View() string {
	var body string
	switch {
	case r.showBuildInfo:
		body = r.d.st.renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		body = r.d.st.renderPage("SESSION KEEPER", "", "")
	default:
		body = r.current.View()
	}

	if notes := r.renderNotifications(); notes != "" {
		body += "\n\n" + notes
	}
	if len(r.confirms) > 0 {
		body += "\n\n" + r.d.st.renderConfirm(r.confirms[0].prompt)
	}
	return r.d.st.app.Render(body)
}

// navigate switches to target and re-runs the bootstrap so the new page is
// bound to the current store contents.
func (r RootModel) navigate(target string) (tea.Model, tea.Cmd) {
	r.route = parseRoute(target)
	r.showBuildInfo = false

	next := r.pageFor(r.route)
	if next == nil {
		return r, nil
	}
	r.current = next

	r.d.emit(events.PageLoad, r.route.target)
	r.d.logger.Debug().Str("func", "RootModel.navigate").Str("target", r.route.target).Msg("navigating")

	return r, tea.Batch(r.cmdBootstrap(), r.current.Open(r.route))
}

// pageFor returns the page for r.path. Unknown paths, such as a server
// supplied redirect, open the home page.
func (r RootModel) pageFor(rt route) page {
	if p, ok := r.pages[rt.path]; ok {
		return p
	}
	return r.pages[models.RouteHome]
}

func (r RootModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var yes bool
	switch {
	case key.Matches(msg, keys.yes):
		yes = true
	case key.Matches(msg, keys.no):
		yes = false
	default:
		return r, nil
	}

	head := r.confirms[0]
	r.confirms = append([]confirmMsg(nil), r.confirms[1:]...)
	head.answer(yes)
	return r, nil
}

func (r RootModel) renderNotifications() string {
	entries := r.board.All()
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, r.d.st.level(e.Level).Render(e.Message))
	}
	return strings.Join(lines, "\n")
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

// bootstrapSeq numbers bootstrap commands. It is only touched from the
// update loop.
type bootstrapSeq struct {
	issued  uint64
	applied uint64
}

func (r RootModel) cmdBootstrap() tea.Cmd {
	r.boot.issued++
	seq := r.boot.issued

	ctx := r.d.ctx
	sessions := r.d.services.Sessions
	return func() tea.Msg {
		v, err := sessions.Bootstrap(ctx)
		return bootstrapMsg{seq: seq, view: v, err: err}
	}
}

func withoutConfirm(confirms []confirmMsg, reply chan<- bool) []confirmMsg {
	out := confirms[:0:0]
	for _, c := range confirms {
		if c.reply != reply {
			out = append(out, c)
		}
	}
	return out
}

func (r RootModel) cmdLoadPrefs() tea.Cmd {
	ctx := r.d.ctx
	prefs := r.d.services.Preferences
	return func() tea.Msg {
		p, err := prefs.Load(ctx)
		return prefsMsg{prefs: p, err: err}
	}
}

func (r RootModel) cmdToggleTheme() tea.Cmd {
	ctx := r.d.ctx
	prefs := r.d.services.Preferences
	return func() tea.Msg {
		p, err := prefs.ToggleTheme(ctx)
		return prefsMsg{prefs: p, err: err}
	}
}

func cmdDismiss(ttl time.Duration, entry notify.Entry) tea.Cmd {
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return dismissMsg{scope: entry.Scope, id: entry.ID}
	})
}

func mouseActivity(msg tea.MouseMsg) (events.Kind, bool) {
	switch {
	case tea.MouseEvent(msg).IsWheel():
		return events.Scroll, true
	case msg.Action == tea.MouseActionPress:
		return events.PointerDown, true
	case msg.Action == tea.MouseActionMotion:
		return events.PointerMove, true
	default:
		return "", false
	}
}
