package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/julez-dev/pinotui/save"
	"github.com/muesli/reflow/wordwrap"
)

const (
	tooltipTrigger      = "?"
	defaultTooltipWidth = 40
)

// HelpTooltip is a small trigger revealing a help text while focused or hovered.
type HelpTooltip struct {
	Text string

	focused bool
	hovered bool

	triggerStyle lipgloss.Style
	bodyStyle    lipgloss.Style
}

func NewHelpTooltip(theme save.Theme, text string) *HelpTooltip {
	return &HelpTooltip{
		Text:         text,
		triggerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.TooltipTriggerColor)),
		bodyStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.TooltipBorderColor)).
			Foreground(lipgloss.Color(theme.TooltipTextColor)).
			Padding(0, 1),
	}
}

func (h *HelpTooltip) Focus() {
	h.focused = true
}

func (h *HelpTooltip) Blur() {
	h.focused = false
}

func (h *HelpTooltip) Toggle() {
	h.focused = !h.focused
}

func (h *HelpTooltip) SetHovered(hovered bool) {
	h.hovered = hovered
}

// Active reports if the help text is currently revealed.
func (h *HelpTooltip) Active() bool {
	return h.focused || h.hovered
}

// Trigger renders the affordance shown inside the toolbar.
func (h *HelpTooltip) Trigger() string {
	if h.Active() {
		return h.triggerStyle.Reverse(true).Render(tooltipTrigger)
	}

	return h.triggerStyle.Render(tooltipTrigger)
}

// TriggerWidth is the number of cells the trigger occupies.
func (h *HelpTooltip) TriggerWidth() int {
	return lipgloss.Width(tooltipTrigger)
}

// Body renders the help text box, wrapped to fit into maxWidth cells.
func (h *HelpTooltip) Body(maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = defaultTooltipWidth
	}

	// border and padding take two cells on each side
	textWidth := max(1, min(maxWidth, defaultTooltipWidth)-4)

	return h.bodyStyle.Render(wordwrap.String(h.Text, textWidth))
}
