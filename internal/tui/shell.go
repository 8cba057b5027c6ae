// Package tui composes the application shell: common chrome, locale
// direction, session loading, and consent gating wrapped around the
// active page. The shell is the only component that initiates session or
// consent loading; pages receive that state through pages.Context.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/keshet-app/keshet/internal/config"
	"github.com/keshet-app/keshet/internal/consent"
	"github.com/keshet-app/keshet/internal/identity"
	"github.com/keshet-app/keshet/internal/locale"
	"github.com/keshet-app/keshet/internal/pages"
)

type sessionLoadedMsg struct {
	gen     int
	session identity.Session
}

type consentLoadedMsg struct {
	gen    int
	record *consent.Record
}

type consentAcceptedMsg struct {
	gen int
	err error
}

type languageSavedMsg struct {
	err error
}

// Shell is the top-level model wrapping every page.
type Shell struct {
	ctx      context.Context
	cfg      config.Config
	registry *pages.Registry
	loader   *identity.Loader
	store    consent.Store
	log      *zap.Logger

	active pages.Page
	loc    *locale.State
	gate   *consent.Gate
	keys   keyMap
	spin   spinner.Model
	prompt consentPrompt

	// gen tags in-flight load results; it is bumped on teardown so a
	// late lookup can never commit state into a dead shell.
	gen           int
	session       identity.Session
	sessionLoaded bool

	width  int
	height int
	status string
}

// New builds a shell around the registry's default page.
func New(ctx context.Context, cfg config.Config, registry *pages.Registry, loader *identity.Loader, store consent.Store, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &Shell{
		ctx:      ctx,
		cfg:      cfg,
		registry: registry,
		loader:   loader,
		store:    store,
		log:      log,
		active:   registry.Default(),
		loc:      locale.New(cfg.UI.Language),
		gate:     consent.NewGate(cfg.UI.ConsentGating),
		keys:     newKeyMap(),
		spin:     sp,
	}
}

// Init triggers the one-shot session load. There is no retry and no
// polling; the shell renders immediately and settles as results arrive.
func (s *Shell) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, s.loadSession(), s.active.Init())
}

func (s *Shell) loadSession() tea.Cmd {
	gen := s.gen
	return func() tea.Msg {
		return sessionLoadedMsg{gen: gen, session: s.loader.LoadSession(s.ctx)}
	}
}

func (s *Shell) loadConsent(user identity.User) tea.Cmd {
	gen := s.gen
	return func() tea.Msg {
		return consentLoadedMsg{gen: gen, record: s.loader.LoadConsentRecord(s.ctx, user)}
	}
}

func (s *Shell) saveLanguage(code string) tea.Cmd {
	cfg := s.cfg
	cfg.UI.Language = code
	return func() tea.Msg {
		return languageSavedMsg{err: config.Save(cfg)}
	}
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = m.Width, m.Height
		return s, nil

	case spinner.TickMsg:
		if s.sessionLoaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(m)
		return s, cmd

	case sessionLoadedMsg:
		if m.gen != s.gen {
			return s, nil
		}
		s.sessionLoaded = true
		s.session = m.session
		if m.session.Anonymous() {
			s.gate.ResolveAnonymous()
			return s, nil
		}
		s.prompt = newConsentPrompt(m.session.User.Email, s.store)
		// The consent lookup starts only once the session is known to
		// be a real one.
		return s, s.loadConsent(*m.session.User)

	case consentLoadedMsg:
		if m.gen != s.gen {
			return s, nil
		}
		s.gate.ResolveRecord(m.record)
		return s, nil

	case consentAcceptedMsg:
		if m.gen != s.gen {
			return s, nil
		}
		s.prompt.saving = false
		if m.err != nil {
			s.prompt.failed = true
			s.log.Warn("consent acceptance failed", zap.Error(m.err))
			return s, nil
		}
		s.gate.Accept()
		s.status = "Policy accepted"
		return s, nil

	case languageSavedMsg:
		if m.err != nil {
			s.log.Warn("could not persist language preference", zap.Error(m.err))
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(m)
	}

	next, cmd := s.active.Update(msg)
	if next != nil {
		s.active = next
	}
	return s, cmd
}

func (s *Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return s, s.quit()
	}

	// While the prompt blocks the page, it owns all remaining keys.
	if s.gate.PromptVisible() {
		var cmd tea.Cmd
		s.prompt, cmd = s.prompt.update(s.ctx, msg, s.keys, s.gen)
		return s, cmd
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, s.quit()
	case key.Matches(msg, s.keys.Language):
		code := s.loc.Cycle()
		s.status = "Language: " + code
		return s, s.saveLanguage(code)
	case key.Matches(msg, s.keys.NextPage):
		return s, s.activateNext()
	}

	if raw := msg.String(); len(raw) == 1 {
		if p, ok := s.registry.ByJumpKey(raw[0]); ok {
			return s, s.setActive(p)
		}
	}

	next, cmd := s.active.Update(msg)
	if next != nil {
		s.active = next
	}
	return s, cmd
}

// quit bumps the load generation so in-flight lookups land dead, then
// quits the program.
func (s *Shell) quit() tea.Cmd {
	s.gen++
	return tea.Quit
}

// Navigate switches to the named page. Unknown names redirect to the
// default page with a status notice; the shell never renders an error
// page for them.
func (s *Shell) Navigate(name string) tea.Cmd {
	p, err := s.registry.Resolve(name)
	if err != nil {
		def := s.registry.Default()
		var unknown *pages.UnknownPageError
		if errors.As(err, &unknown) && unknown.ClosestMatch != "" {
			s.status = fmt.Sprintf("Unknown page %q (did you mean %q?), showing %s", name, unknown.ClosestMatch, def.ID())
		} else {
			s.status = fmt.Sprintf("Unknown page %q, showing %s", name, def.ID())
		}
		s.log.Warn("unknown page requested", zap.String("name", name))
		p = def
	}
	return s.setActive(p)
}

func (s *Shell) setActive(p pages.Page) tea.Cmd {
	if p == s.active {
		return nil
	}
	s.active = p
	return p.Init()
}

func (s *Shell) activateNext() tea.Cmd {
	all := s.registry.All()
	for i, p := range all {
		if p == s.active {
			return s.setActive(all[(i+1)%len(all)])
		}
	}
	return s.setActive(s.registry.Default())
}

// pageContext is the state handed to pages; they never fetch it.
func (s *Shell) pageContext() pages.Context {
	pc := pages.Context{
		Language:    s.loc.Language(),
		RightToLeft: s.loc.IsRightToLeft(),
	}
	if !s.session.Anonymous() {
		pc.Authenticated = true
		pc.UserEmail = s.session.User.Email
	}
	return pc
}

// ActivePage returns the active page's name.
func (s *Shell) ActivePage() string {
	return s.active.ID()
}

// GateState exposes the consent gate's state.
func (s *Shell) GateState() consent.GateState {
	return s.gate.State()
}
