package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/padlink/internal/gamepad"
	"github.com/five82/padlink/internal/reconcile"
)

const (
	panelWidth = 46
	barWidth   = 12
)

// chipNames are the short names drawn on button chips, keyed by label.
var chipNames = map[string]string{
	"button-1":                     "1",
	"button-2":                     "2",
	"button-3":                     "3",
	"button-4":                     "4",
	"button-left-shoulder-top":     "LB",
	"button-left-shoulder-bottom":  "LT",
	"button-right-shoulder-top":    "RB",
	"button-right-shoulder-bottom": "RT",
	"button-select":                "SEL",
	"button-start":                 "STA",
	"stick-1":                      "L3",
	"stick-2":                      "R3",
	"button-dpad-top":              "↑",
	"button-dpad-bottom":           "↓",
	"button-dpad-left":             "←",
	"button-dpad-right":            "→",
}

// renderBoard lays the panels out in as many columns as fit.
func (m Model) renderBoard() string {
	styles := m.theme.Styles()
	if len(m.board.panels) == 0 {
		msg := "Waiting for players..."
		if m.loop.Mode() == reconcile.ModeFocused {
			msg = fmt.Sprintf("Waiting for player #%d...", m.store.Focus())
		}
		return placeCentered(m.width, m.boardHeight(), styles.MutedText.Render(msg), m.theme.Background)
	}

	cols := max(m.width/(panelWidth+2), 1)
	var rows []string
	for start := 0; start < len(m.board.panels); start += cols {
		end := min(start+cols, len(m.board.panels))
		cells := make([]string, 0, end-start)
		for pos := start; pos < end; pos++ {
			cells = append(cells, m.renderPanel(pos, m.board.panels[pos]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderPanel(pos int, p *panel) string {
	styles := m.theme.Styles()

	frame := styles.Panel
	if m.loop.Mode() == reconcile.ModeAll && p.device != nil && p.device.Index == m.store.Focus() {
		frame = styles.PanelFocus
	}

	name, index := gamepad.DefaultName, -1
	var ts uint64
	if p.device != nil {
		name, index, ts = p.device.Name, p.device.Index, p.device.Timestamp
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("#%d", pos)))
	b.WriteString(" ")
	b.WriteString(styles.Text.Bold(true).Render(truncate(name, 20)))
	b.WriteString(" ")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("src %d · ts %d", index, ts)))
	b.WriteString("\n")

	if !p.hasReadings() {
		b.WriteString(styles.MutedText.Render("no input yet"))
		return frame.Width(panelWidth).Render(b.String())
	}

	b.WriteString(m.renderChips(p, gamepad.ButtonSlots[:8]))
	b.WriteString("\n")
	b.WriteString(m.renderChips(p, gamepad.ButtonSlots[8:]))

	if !m.compact {
		b.WriteString("\n")
		b.WriteString(m.renderTriggers(p))
		for _, stick := range []string{"stick-1", "stick-2"} {
			b.WriteString("\n")
			b.WriteString(m.renderStick(p, stick))
		}
	}

	if extras := m.renderExtras(p); extras != "" {
		b.WriteString("\n")
		b.WriteString(extras)
	}

	return frame.Width(panelWidth).Render(b.String())
}

func (m Model) renderChips(p *panel, slots []gamepad.ButtonSlot) string {
	styles := m.theme.Styles()
	chips := make([]string, 0, len(slots))
	for _, slot := range slots {
		v := p.buttons[slot.Label]
		style := styles.ChipIdle
		switch {
		case v > 0:
			style = styles.ChipPressed
		case v < 0:
			style = styles.ChipNegative
		}
		chips = append(chips, style.Render(chipNames[slot.Label]))
	}
	return strings.Join(chips, "")
}

// renderTriggers draws the lower shoulders as analog bars.
func (m Model) renderTriggers(p *panel) string {
	styles := m.theme.Styles()
	lt := p.buttons["button-left-shoulder-bottom"]
	rt := p.buttons["button-right-shoulder-bottom"]
	return styles.MutedText.Render("LT ") + m.bar(lt, m.theme.Warning) +
		styles.MutedText.Render(" RT ") + m.bar(rt, m.theme.Warning)
}

// renderStick draws both dimensions of a stick, centered on zero.
func (m Model) renderStick(p *panel, stick string) string {
	styles := m.theme.Styles()
	var x, y float64
	for _, r := range p.axes {
		if r.stick != stick {
			continue
		}
		if r.isX {
			x = r.value
		} else {
			y = r.value
		}
	}
	short := "L"
	if stick == "stick-2" {
		short = "R"
	}
	return styles.MutedText.Render(short+"x ") + m.bar((x+1)/2, m.theme.Accent) +
		styles.Text.Render(" "+formatValue(x)) +
		styles.MutedText.Render(" y ") + m.bar((y+1)/2, m.theme.Accent) +
		styles.Text.Render(" "+formatValue(y))
}

func (m Model) renderExtras(p *panel) string {
	if len(p.extraButtons) == 0 && len(p.extraAxes) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	lines := make([]string, 0, len(p.extraButtons)+len(p.extraAxes))
	for _, label := range p.extraButtons {
		lines = append(lines, styles.FaintText.Render(padRight(label, 18))+
			styles.Text.Render(formatValue(p.buttons[label])))
	}
	for _, label := range p.extraAxes {
		lines = append(lines, styles.FaintText.Render(padRight(label, 18))+
			styles.Text.Render(formatValue(p.axes[label].value)))
	}
	return strings.Join(lines, "\n")
}

// bar renders a fraction in [0,1] as a solid progress bar.
func (m Model) bar(fraction float64, color string) string {
	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
		progress.WithSolidFill(color),
	)
	bar.EmptyColor = m.theme.SurfaceAlt
	return bar.ViewAs(clampUnit(fraction))
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
