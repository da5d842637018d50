package component

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/julez-dev/pinotui/save"
	"github.com/stretchr/testify/require"
)

func TestHelpTooltip_Active(t *testing.T) {
	t.Parallel()

	tip := NewHelpTooltip(save.BuildDefaultTheme(), "help")
	require.False(t, tip.Active())

	tip.SetHovered(true)
	require.True(t, tip.Active())

	tip.Focus()
	tip.SetHovered(false)
	require.True(t, tip.Active())

	tip.Toggle()
	require.False(t, tip.Active())
}

func TestHelpTooltip_BodyWraps(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("word ", 20)
	tip := NewHelpTooltip(save.BuildDefaultTheme(), text)

	body := tip.Body(30)
	require.LessOrEqual(t, lipgloss.Width(body), 30)
	require.Greater(t, lipgloss.Height(body), 3)
	require.Contains(t, body, "word")

	require.LessOrEqual(t, lipgloss.Width(tip.Body(0)), defaultTooltipWidth)
}
