package component

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/julez-dev/pinotui/save"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func typeRunes(t *Toolbar, s string) {
	t.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestToolbar_TitleIsUppercased(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"orders", "Orders", "oRdErS", "ORDERS"} {
		toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{Name: name, Mode: CountMode{}})
		require.NoError(t, err)
		require.Contains(t, toolbar.View(), "ORDERS")
		require.NotContains(t, toolbar.View(), "rders")
	}
}

func TestToolbar_CountMode(t *testing.T) {
	t.Parallel()

	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "orders",
		Mode: CountMode{Count: intPtr(42)},
	})
	require.NoError(t, err)
	toolbar.SetWidth(60)

	view := toolbar.View()
	require.Contains(t, view, "ORDERS")
	require.Contains(t, view, "42")
	require.NotContains(t, view, searchPrompt)
	require.NotContains(t, view, searchPlaceholder)
	require.Nil(t, toolbar.search)
	require.Nil(t, toolbar.FocusSearch(), "focusing search in count mode is a no-op")
	require.False(t, toolbar.SearchFocused())
}

func TestToolbar_CountModeWithoutCount(t *testing.T) {
	t.Parallel()

	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{Name: "orders"})
	require.NoError(t, err)

	require.Equal(t, CountMode{}, toolbar.Props().Mode)
	require.Equal(t, "ORDERS", strings.TrimSpace(toolbar.View()))
}

func TestToolbar_SearchMode(t *testing.T) {
	t.Parallel()

	var got []string
	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "logs",
		Mode: SearchMode{
			Value:    "err",
			OnSearch: func(s string) { got = append(got, s) },
		},
	})
	require.NoError(t, err)
	toolbar.SetWidth(80)

	view := toolbar.View()
	require.Contains(t, view, "LOGS")
	require.Contains(t, view, searchPrompt+"err")
	require.NotNil(t, toolbar.search)
	require.Empty(t, got, "initialising the search box must not emit a change")

	// not focused, the search box ignores key input
	typeRunes(toolbar, "x")
	require.Empty(t, got)

	toolbar.FocusSearch()
	require.True(t, toolbar.SearchFocused())

	typeRunes(toolbar, "or")
	require.Equal(t, []string{"error"}, got)
	require.Contains(t, toolbar.View(), "error")
}

func TestToolbar_SearchChangeInvokesCallbackOnce(t *testing.T) {
	t.Parallel()

	var calls []string
	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "tables",
		Mode: SearchMode{OnSearch: func(s string) { calls = append(calls, s) }},
	})
	require.NoError(t, err)

	toolbar.FocusSearch()
	typeRunes(toolbar, "abc")
	require.Equal(t, []string{"abc"}, calls)

	// keys that do not change the text do not emit a change
	toolbar.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, []string{"abc"}, calls)

	toolbar.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, []string{"abc", "ab"}, calls)
}

func TestToolbar_SearchUsesLatestHandler(t *testing.T) {
	t.Parallel()

	var first, second []string
	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "tables",
		Mode: SearchMode{OnSearch: func(s string) { first = append(first, s) }},
	})
	require.NoError(t, err)
	toolbar.FocusSearch()

	require.NoError(t, toolbar.SetProps(ToolbarProps{
		Name: "tables",
		Mode: SearchMode{OnSearch: func(s string) { second = append(second, s) }},
	}))

	typeRunes(toolbar, "a")
	require.Empty(t, first)
	require.Equal(t, []string{"a"}, second)
}

func TestToolbar_SetPropsTakesOverParentValue(t *testing.T) {
	t.Parallel()

	var calls int
	onSearch := func(string) { calls++ }

	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "tables",
		Mode: SearchMode{Value: "ord", OnSearch: onSearch},
	})
	require.NoError(t, err)

	require.NoError(t, toolbar.SetProps(ToolbarProps{
		Name: "tables",
		Mode: SearchMode{Value: "", OnSearch: onSearch},
	}))
	require.Equal(t, "", toolbar.search.Value())
	require.Zero(t, calls)
}

func TestToolbar_MissingSearchHandler(t *testing.T) {
	t.Parallel()

	_, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "tables",
		Mode: SearchMode{Value: "x"},
	})
	require.ErrorIs(t, err, ErrMissingSearchHandler)

	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{Name: "tables", Mode: CountMode{}})
	require.NoError(t, err)

	err = toolbar.SetProps(ToolbarProps{Name: "tables", Mode: SearchMode{}})
	require.ErrorIs(t, err, ErrMissingSearchHandler)
	require.Equal(t, CountMode{}, toolbar.Props().Mode, "rejected props must not be applied")
}

func TestToolbar_SwitchingModes(t *testing.T) {
	t.Parallel()

	onSearch := func(string) {}
	toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "tables",
		Mode: SearchMode{Value: "abc", OnSearch: onSearch},
	})
	require.NoError(t, err)

	require.NoError(t, toolbar.SetProps(ToolbarProps{Name: "tables", Mode: CountMode{Count: intPtr(7)}}))
	view := toolbar.View()
	require.Contains(t, view, "7")
	require.NotContains(t, view, searchPrompt)

	require.NoError(t, toolbar.SetProps(ToolbarProps{Name: "tables", Mode: SearchMode{Value: "x", OnSearch: onSearch}}))
	view = toolbar.View()
	require.Contains(t, view, searchPrompt+"x")
	require.NotContains(t, view, "7")
}

func TestToolbar_Tooltip(t *testing.T) {
	t.Parallel()

	const help = "Tables of the database"

	t.Run("omitted", func(t *testing.T) {
		t.Parallel()

		toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
			Name:        "tables",
			Mode:        CountMode{Count: intPtr(1)},
			TooltipText: help,
		})
		require.NoError(t, err)

		toolbar.ToggleTooltip()
		view := toolbar.View()
		require.NotContains(t, view, tooltipTrigger)
		require.NotContains(t, view, help)
		require.False(t, toolbar.TooltipActive())
		require.Equal(t, -1, toolbar.triggerX)
	})

	t.Run("focus reveals text", func(t *testing.T) {
		t.Parallel()

		toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
			Name:        "tables",
			Mode:        CountMode{Count: intPtr(1)},
			ShowTooltip: true,
			TooltipText: help,
		})
		require.NoError(t, err)
		toolbar.SetWidth(60)

		view := toolbar.View()
		require.Contains(t, view, tooltipTrigger)
		require.NotContains(t, view, help)

		toolbar.ToggleTooltip()
		require.True(t, toolbar.TooltipActive())
		require.Contains(t, toolbar.View(), help)

		toolbar.Blur()
		require.NotContains(t, toolbar.View(), help)
	})

	t.Run("hover reveals text", func(t *testing.T) {
		t.Parallel()

		toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
			Name:        "tables",
			Mode:        CountMode{Count: intPtr(1)},
			ShowTooltip: true,
			TooltipText: help,
		})
		require.NoError(t, err)
		toolbar.SetWidth(60)
		toolbar.SetOrigin(2, 3)

		_ = toolbar.View()
		require.Equal(t, 58, toolbar.triggerX, "trigger is the last cell before the right padding")

		toolbar.Update(tea.MouseMsg{X: 2 + toolbar.triggerX, Y: 3, Action: tea.MouseActionMotion})
		require.Contains(t, toolbar.View(), help)

		toolbar.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionMotion})
		require.NotContains(t, toolbar.View(), help)

		toolbar.Update(tea.MouseMsg{X: 2 + toolbar.triggerX, Y: 4, Action: tea.MouseActionMotion})
		require.NotContains(t, toolbar.View(), help)
	})

	t.Run("disabling removes trigger", func(t *testing.T) {
		t.Parallel()

		props := ToolbarProps{
			Name:        "tables",
			ShowTooltip: true,
			TooltipText: help,
		}
		toolbar, err := NewToolbar(save.BuildDefaultTheme(), props)
		require.NoError(t, err)
		toolbar.ToggleTooltip()

		props.ShowTooltip = false
		require.NoError(t, toolbar.SetProps(props))
		require.NotContains(t, toolbar.View(), tooltipTrigger)
		require.NotContains(t, toolbar.View(), help)
	})
}

func TestToolbar_AdditionalControls(t *testing.T) {
	t.Parallel()

	withControls, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name:               "tables",
		Mode:               CountMode{Count: intPtr(3)},
		AdditionalControls: StaticView("[refreshing]"),
	})
	require.NoError(t, err)

	view := withControls.View()
	require.Contains(t, view, "[refreshing]")
	require.Less(t, strings.Index(view, "[refreshing]"), strings.Index(view, "3"), "controls come before the count")

	withoutControls, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
		Name: "tables",
		Mode: CountMode{Count: intPtr(3)},
	})
	require.NoError(t, err)

	require.Equal(t, "TABLES 3", strings.TrimSpace(withoutControls.View()))
}

func TestToolbar_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("orders count", func(t *testing.T) {
		t.Parallel()

		toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
			Name: "orders",
			Mode: CountMode{Count: intPtr(42)},
		})
		require.NoError(t, err)

		require.Equal(t, "ORDERS 42", strings.TrimSpace(toolbar.View()))
	})

	t.Run("logs search", func(t *testing.T) {
		t.Parallel()

		var calls []string
		toolbar, err := NewToolbar(save.BuildDefaultTheme(), ToolbarProps{
			Name: "logs",
			Mode: SearchMode{Value: "err", OnSearch: func(s string) { calls = append(calls, s) }},
		})
		require.NoError(t, err)

		toolbar.FocusSearch()
		typeRunes(toolbar, "or")

		require.Equal(t, []string{"error"}, calls)
	})
}
