package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keshet-app/keshet/internal/consent"
)

// consentPrompt is the policy-consent modal. It owns persisting the
// acceptance: the gate is signalled only after the store write succeeds.
type consentPrompt struct {
	email  string
	store  consent.Store
	saving bool
	failed bool
}

func newConsentPrompt(email string, store consent.Store) consentPrompt {
	return consentPrompt{email: email, store: store}
}

func (p consentPrompt) update(ctx context.Context, msg tea.KeyMsg, keys keyMap, gen int) (consentPrompt, tea.Cmd) {
	if p.saving || !key.Matches(msg, keys.Accept) {
		return p, nil
	}
	p.saving = true
	p.failed = false
	email, store := p.email, p.store
	return p, func() tea.Msg {
		err := store.RecordAcceptance(ctx, email)
		return consentAcceptedMsg{gen: gen, err: err}
	}
}

func (p consentPrompt) view(rtl bool) string {
	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Privacy policy"))
	b.WriteString("\n\n")
	b.WriteString("Before continuing, please confirm you have read\nand accept the Keshet privacy policy.")
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("Signed in as " + p.email))
	b.WriteString("\n\n")
	switch {
	case p.saving:
		b.WriteString(statusStyle.Render("Recording acceptance…"))
	case p.failed:
		b.WriteString(warnStyle.Render("Could not record acceptance, press enter to retry"))
	default:
		b.WriteString("Press enter to accept")
	}

	return modalStyle.Align(align).Render(b.String())
}
