package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/padlink/internal/linkstate"
	"github.com/five82/padlink/internal/reconcile"
)

const (
	linkConnecting = "connecting"
	linkConnected  = "connected"
	linkRetrying   = "retrying"
	linkOffline    = "offline"
)

// linkStatus classifies a link snapshot into one of the badge states.
func linkStatus(s linkstate.Snapshot) string {
	switch {
	case s.Connected:
		return linkConnected
	case s.IsOffline():
		return linkOffline
	case s.ConsecutiveFailures > 0:
		return linkRetrying
	default:
		return linkConnecting
	}
}

// classifyConnectionError shortens common dial failures for the header.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "REFUSED"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	case strings.Contains(msg, "bad handshake"):
		return "HANDSHAKE"
	case strings.Contains(msg, "relay closed"):
		return "CLOSED"
	default:
		return "ERROR"
	}
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.link.Snapshot()
	compact := m.width < 100

	status := linkStatus(snap)
	parts := []string{
		bg.Render("padlink", styles.Logo),
		styles.LinkStyle(status).Render(strings.ToUpper(status)),
	}

	switch status {
	case linkConnected:
		if !snap.ConnectedAt.IsZero() {
			parts = append(parts, bg.Render(humanizeDuration(time.Since(snap.ConnectedAt)), styles.MutedText))
		}
	case linkRetrying, linkOffline:
		parts = append(parts, bg.Render(classifyConnectionError(snap.LastError), styles.DangerText))
		if snap.NextRetry > 0 {
			parts = append(parts,
				bg.Render("retry in", styles.MutedText)+bg.Space()+
					bg.Render(snap.NextRetry.Round(time.Second).String(), styles.WarningText))
		}
	}

	mode := m.loop.Mode()
	modeText := mode.String()
	if mode == reconcile.ModeFocused {
		modeText = fmt.Sprintf("focused #%d", m.store.Focus())
	}
	parts = append(parts,
		bg.Render("Mode:", styles.MutedText)+bg.Space()+bg.Render(modeText, styles.AccentText),
		bg.Render("Pads:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(m.board.panels), m.store.Len()), styles.Text),
	)

	if !compact {
		parts = append(parts,
			bg.Render("Frames:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", snap.Frames), styles.InfoText))
		if snap.URL != "" {
			parts = append(parts, bg.Render(truncate(snap.URL, 40), styles.FaintText))
		}
	}

	if !m.loop.Running() {
		parts = append(parts, bg.Render("PAUSED", styles.WarningText.Bold(true)))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	h := m.help
	h.Styles.ShortKey = styles.WarningText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return styles.Footer.Width(m.width).Render(h.View(m.keys))
}

// boardHeight is the space left for panels between header and footer.
func (m Model) boardHeight() int {
	return max(m.height-2, 1)
}

func placeCentered(width, height int, content string, bg string) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(bg)),
	)
}
