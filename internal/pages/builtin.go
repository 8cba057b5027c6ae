package pages

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// StaticPage renders fixed body text. The shell supplies chrome and
// session state; static pages only format their own content.
type StaticPage struct {
	id    string
	title string
	jump  byte
	body  string
}

// NewStaticPage builds a page with a fixed body.
func NewStaticPage(id, title string, jumpKey byte, body string) *StaticPage {
	return &StaticPage{id: id, title: title, jump: jumpKey, body: body}
}

func (p *StaticPage) ID() string    { return p.id }
func (p *StaticPage) Title() string { return p.title }
func (p *StaticPage) JumpKey() byte { return p.jump }
func (p *StaticPage) Init() tea.Cmd { return nil }

func (p *StaticPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	return p, nil
}

func (p *StaticPage) View(pc Context, width, height int) string {
	var b strings.Builder
	b.WriteString(p.body)
	if p.id == "profile" {
		b.WriteString("\n\n")
		if pc.Authenticated {
			fmt.Fprintf(&b, "Signed in as %s", pc.UserEmail)
		} else {
			b.WriteString("Browsing anonymously")
		}
	}
	if p.id == "settings" {
		fmt.Fprintf(&b, "\n\nLanguage: %s (ctrl+l to switch)", pc.Language)
	}
	return b.String()
}

// Builtin returns the fixed page set of the client with "overview" as the
// landing page.
func Builtin() *Registry {
	return NewRegistry("overview",
		NewStaticPage("overview", "Overview", 'o', "Your week at a glance."),
		NewStaticPage("activity", "Activity", 'a', "Recent activity will appear here."),
		NewStaticPage("profile", "Profile", 'p', "Account details."),
		NewStaticPage("settings", "Settings", 's', "Client preferences."),
	)
}
