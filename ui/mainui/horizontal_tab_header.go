package mainui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type horizontalTabHeader struct {
	width    int
	entries  []tabHeaderEntry
	database string

	tabHeaderStyle       lipgloss.Style
	tabHeaderActiveStyle lipgloss.Style
	databaseStyle        lipgloss.Style
}

func newHorizontalTabHeader(width int, userConfiguration UserConfiguration) *horizontalTabHeader {
	return &horizontalTabHeader{
		width:                width,
		tabHeaderStyle:       lipgloss.NewStyle().Background(lipgloss.Color(userConfiguration.Theme.TabHeaderBackgroundColor)).MarginRight(1),
		tabHeaderActiveStyle: lipgloss.NewStyle().Background(lipgloss.Color(userConfiguration.Theme.TabHeaderActiveBackgroundColor)).MarginRight(1).Bold(true),
		databaseStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color(userConfiguration.Theme.DimmedTextColor)),
	}
}

func (h *horizontalTabHeader) View() string {
	if len(h.entries) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		style := h.tabHeaderStyle
		if e.selected {
			style = h.tabHeaderActiveStyle
		}

		rendered = append(rendered, style.Width(h.maxEntryWidth()).AlignHorizontal(lipgloss.Center).Render(e.render()))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Left, rendered...)

	if h.database == "" {
		return out
	}

	db := h.databaseStyle.Render("db: " + h.database)
	spaces := h.width - lipgloss.Width(out) - lipgloss.Width(db)
	if spaces < 1 {
		return out
	}

	return out + strings.Repeat(" ", spaces) + db
}

func (h *horizontalTabHeader) AddTab(id, name string) {
	h.entries = append(h.entries, tabHeaderEntry{
		id:   id,
		name: name,
	})
}

func (h *horizontalTabHeader) SelectTab(id string) {
	for i := range h.entries {
		h.entries[i].selected = h.entries[i].id == id
	}
}

func (h *horizontalTabHeader) Reset() {
	h.entries = nil
}

func (h *horizontalTabHeader) SetDatabase(database string) {
	h.database = database
}

func (h *horizontalTabHeader) Resize(width int) {
	h.width = width
}

func (h *horizontalTabHeader) maxEntryWidth() int {
	max := 5
	for _, entry := range h.entries {
		w := lipgloss.Width(entry.render()) + 1
		if w > max {
			max = w
		}
	}

	return max
}
