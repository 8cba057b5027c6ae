package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (s *Shell) View() string {
	width, height := s.width, s.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	rtl := s.loc.IsRightToLeft()

	header := s.renderHeader(width, rtl)
	footer := s.renderFooter(width, rtl)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	sidebar := s.renderSidebar(bodyHeight, rtl)
	contentWidth := width - lipgloss.Width(sidebar)
	if contentWidth < 1 {
		contentWidth = 1
	}
	content := s.renderContent(contentWidth, bodyHeight, rtl)

	// The sidebar hugs the reading edge, so the whole body mirrors
	// under right-to-left layout.
	var body string
	if rtl {
		body = lipgloss.JoinHorizontal(lipgloss.Top, content, sidebar)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if s.gate.PromptVisible() {
		overlay := s.prompt.view(rtl)
		x := overlayOrigin(rtl, width, lipgloss.Width(overlay), s.cfg.UI.SidebarWidth+s.cfg.UI.OverlayPadding)
		y := (height - lipgloss.Height(overlay)) / 2
		if y < 1 {
			y = 1
		}
		view = compositeAt(view, overlay, x, y, width, height)
	}
	return view
}

func (s *Shell) renderHeader(width int, rtl bool) string {
	title := titleStyle.Render("Keshet") + " " + s.active.Title()

	var who string
	switch {
	case !s.sessionLoaded:
		who = s.spin.View() + " loading session"
	case s.session.Anonymous():
		who = "anonymous"
	default:
		who = s.session.User.Email
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(who) - 4
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + who
	if rtl {
		line = who + strings.Repeat(" ", gap) + title
	}
	return headerStyle.Width(width).Render(truncate(line, width-2))
}

func (s *Shell) renderSidebar(height int, rtl bool) string {
	width := s.cfg.UI.SidebarWidth
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	for i, p := range s.registry.All() {
		if i > 0 {
			b.WriteString("\n")
		}
		label := fmt.Sprintf("[%s] %s", string(p.JumpKey()), p.Title())
		if p == s.active {
			b.WriteString(activeStyle.Render("› " + label))
		} else {
			b.WriteString(inactiveStyle.Render("  " + label))
		}
	}

	inner := height - 2 // border rows
	if inner < 1 {
		inner = 1
	}
	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}
	return sidebarStyle.Width(width).Height(inner).Align(align).Render(b.String())
}

func (s *Shell) renderContent(width, height int, rtl bool) string {
	body := s.active.View(s.pageContext(), width, height)

	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}
	return contentStyle.Width(width).Height(height).Align(align).Render(body)
}

func (s *Shell) renderFooter(width int, rtl bool) string {
	hints := []string{
		s.keys.NextPage.Help().Key + " " + s.keys.NextPage.Help().Desc,
		s.keys.Language.Help().Key + " " + s.keys.Language.Help().Desc,
		s.keys.Quit.Help().Key + " " + s.keys.Quit.Help().Desc,
	}
	line := strings.Join(hints, "  ·  ")
	if s.status != "" {
		line = statusStyle.Render(s.status) + "  ·  " + line
	}

	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}
	return footerStyle.Width(width).Align(align).Render(truncate(line, width-4))
}
