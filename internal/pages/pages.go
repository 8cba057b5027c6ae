// Package pages contains the page contract and the static page registry.
//
// Allowed here:
// - page identity, registry invariants, unknown-page resolution policy
//
// Not allowed here:
// - shell routing or chrome rendering (tui) and session/consent loading
package pages

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// Context carries the shell-owned state a page may render from. Pages
// never fetch session or consent state themselves.
type Context struct {
	Language      string
	RightToLeft   bool
	Authenticated bool
	UserEmail     string
}

// Page is one navigable page of the client.
type Page interface {
	ID() string
	Title() string
	JumpKey() byte
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(pc Context, width, height int) string
}

// UnknownPageError reports a name the registry cannot resolve. The shell
// treats it as a redirect to the default page, never as a fatal error.
type UnknownPageError struct {
	Name         string
	ClosestMatch string
}

func (e *UnknownPageError) Error() string {
	if e.ClosestMatch != "" {
		return fmt.Sprintf("unknown page %q (closest match %q)", e.Name, e.ClosestMatch)
	}
	return fmt.Sprintf("unknown page %q", e.Name)
}

// Registry is the fixed name-to-page mapping plus the designated default
// page. It is immutable after construction.
type Registry struct {
	pages       []Page
	byName      map[string]Page
	defaultName string
}

// NewRegistry builds a registry from the given pages. It panics when the
// set is empty, a name or jump key repeats, or defaultName does not
// resolve; these are programmer errors caught at wiring time.
func NewRegistry(defaultName string, pgs ...Page) *Registry {
	if len(pgs) == 0 {
		panic("pages: registry must contain at least one page")
	}
	byName := make(map[string]Page, len(pgs))
	jumpKeys := make(map[byte]string, len(pgs))
	for _, p := range pgs {
		name := p.ID()
		if name == "" {
			panic("pages: page with empty name")
		}
		if _, exists := byName[name]; exists {
			panic(fmt.Sprintf("pages: duplicate page name %q", name))
		}
		if key := p.JumpKey(); key != 0 {
			if other, exists := jumpKeys[key]; exists {
				panic(fmt.Sprintf("pages: duplicate jump key %q across pages %q and %q", string(key), other, name))
			}
			jumpKeys[p.JumpKey()] = name
		}
		byName[name] = p
	}
	if _, ok := byName[defaultName]; !ok {
		panic(fmt.Sprintf("pages: default page %q is not registered", defaultName))
	}
	return &Registry{pages: pgs, byName: byName, defaultName: defaultName}
}

// Resolve returns the page registered under name. Unknown names yield an
// *UnknownPageError carrying the closest registered name, when one is
// plausibly close.
func (r *Registry) Resolve(name string) (Page, error) {
	if p, ok := r.byName[name]; ok {
		return p, nil
	}
	return nil, &UnknownPageError{Name: name, ClosestMatch: r.closest(name)}
}

// Default returns the designated landing page.
func (r *Registry) Default() Page {
	return r.byName[r.defaultName]
}

// All returns the pages in registration order, for sidebar rendering.
func (r *Registry) All() []Page {
	return r.pages
}

// ByJumpKey returns the page bound to key, if any.
func (r *Registry) ByJumpKey(key byte) (Page, bool) {
	for _, p := range r.pages {
		if p.JumpKey() == key {
			return p, true
		}
	}
	return nil, false
}

// closest returns the registered name nearest to name, or "" when nothing
// is within editing distance of a likely typo.
func (r *Registry) closest(name string) string {
	const maxDistance = 3
	best := ""
	bestDist := maxDistance + 1
	for _, p := range r.pages {
		if d := levenshtein.ComputeDistance(name, p.ID()); d < bestDist {
			best = p.ID()
			bestDist = d
		}
	}
	return best
}
