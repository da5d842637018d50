package component

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julez-dev/pinotui/save"
)

// ErrMissingSearchHandler is returned when the toolbar is put into search mode without a handler.
var ErrMissingSearchHandler = errors.New("search mode requires an OnSearch handler")

// Viewer is anything that can render itself, used for caller supplied controls.
type Viewer interface {
	View() string
}

// StaticView renders a fixed string.
type StaticView string

func (s StaticView) View() string {
	return string(s)
}

// ToolbarMode selects what the toolbar shows next to the title.
// It is either SearchMode or CountMode.
type ToolbarMode interface {
	toolbarMode()
}

// SearchMode shows a search box initialised with Value. Every change of the
// search text is forwarded to OnSearch.
type SearchMode struct {
	Value    string
	OnSearch func(string)
}

// CountMode shows the number of records. A nil Count renders an empty label.
type CountMode struct {
	Count *int
}

func (SearchMode) toolbarMode() {}
func (CountMode) toolbarMode() {}

type ToolbarProps struct {
	Name string
	// Mode defaults to an empty CountMode when nil.
	Mode ToolbarMode

	ShowTooltip bool
	TooltipText string

	// AdditionalControls is rendered verbatim in front of the search box or record count.
	AdditionalControls Viewer
}

func (p ToolbarProps) validate() error {
	if m, ok := p.Mode.(SearchMode); ok && m.OnSearch == nil {
		return ErrMissingSearchHandler
	}

	return nil
}

type toolbarStyles struct {
	bar   lipgloss.Style
	title lipgloss.Style
	count lipgloss.Style
}

// Toolbar is the header bar on top of a data table. It renders the props it
// was given and forwards search changes to the parent. The only state it keeps
// is the text state of the search box and the tooltip focus.
type Toolbar struct {
	theme  save.Theme
	styles toolbarStyles
	props  ToolbarProps

	search  *SearchBox
	tooltip *HelpTooltip

	width            int
	originX, originY int
	triggerX         int // column of the tooltip trigger in the last render, -1 without trigger
}

func NewToolbar(theme save.Theme, props ToolbarProps) (*Toolbar, error) {
	t := &Toolbar{
		theme: theme,
		styles: toolbarStyles{
			bar: lipgloss.NewStyle().
				Background(lipgloss.Color(theme.ToolbarBackgroundColor)).
				Padding(0, theme.Spacing(1)),
			title: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.ToolbarTitleColor)),
			count: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.ToolbarCountColor)),
		},
		triggerX: -1,
	}

	if err := t.SetProps(props); err != nil {
		return nil, err
	}

	return t, nil
}

// SetProps replaces the rendered props. In search mode the search box takes
// over the value from the props if it differs from its own text.
func (t *Toolbar) SetProps(props ToolbarProps) error {
	if err := props.validate(); err != nil {
		return err
	}

	if props.Mode == nil {
		props.Mode = CountMode{}
	}

	t.props = props

	switch mode := props.Mode.(type) {
	case SearchMode:
		if t.search == nil {
			t.search = NewSearchBox(t.theme)
			t.search.OnChange = t.forwardSearch
		}

		if t.search.Value() != mode.Value {
			t.search.SetValue(mode.Value)
		}
	case CountMode:
		t.search = nil
	}

	if props.ShowTooltip {
		if t.tooltip == nil {
			t.tooltip = NewHelpTooltip(t.theme, props.TooltipText)
		}
		t.tooltip.Text = props.TooltipText
	} else {
		t.tooltip = nil
	}

	return nil
}

func (t *Toolbar) Props() ToolbarProps {
	return t.props
}

func (t *Toolbar) forwardSearch(value string) {
	// the mode is validated in SetProps, OnSearch is never nil here
	if mode, ok := t.props.Mode.(SearchMode); ok {
		mode.OnSearch(value)
	}
}

func (t *Toolbar) Init() tea.Cmd {
	return nil
}

func (t *Toolbar) Update(msg tea.Msg) (*Toolbar, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		t.handleHover(msg)
		return t, nil
	}

	if t.search == nil {
		return t, nil
	}

	var cmd tea.Cmd
	t.search, cmd = t.search.Update(msg)

	return t, cmd
}

func (t *Toolbar) handleHover(msg tea.MouseMsg) {
	if t.tooltip == nil || t.triggerX < 0 {
		return
	}

	x := msg.X - t.originX
	hovered := msg.Y == t.originY && x >= t.triggerX && x < t.triggerX+t.tooltip.TriggerWidth()
	t.tooltip.SetHovered(hovered)
}

func (t *Toolbar) View() string {
	pad := t.theme.Spacing(1)
	gap := strings.Repeat(" ", t.theme.Spacing(1))

	title := t.styles.title.Render(strings.ToUpper(t.props.Name))

	var controls []string

	if t.props.AdditionalControls != nil {
		if v := t.props.AdditionalControls.View(); v != "" {
			controls = append(controls, v)
		}
	}

	switch mode := t.props.Mode.(type) {
	case SearchMode:
		controls = append(controls, t.search.View())
	case CountMode:
		var label string
		if mode.Count != nil {
			label = strconv.Itoa(*mode.Count)
		}
		controls = append(controls, t.styles.count.Render(label))
	}

	if t.tooltip != nil {
		controls = append(controls, t.tooltip.Trigger())
	}

	right := strings.Join(controls, gap)

	filler := len(gap)
	if t.width > 0 {
		filler = max(filler, t.width-2*pad-lipgloss.Width(title)-lipgloss.Width(right))
	}

	line := title + strings.Repeat(" ", filler) + right

	t.triggerX = -1
	if t.tooltip != nil {
		t.triggerX = pad + lipgloss.Width(line) - t.tooltip.TriggerWidth()
	}

	bar := t.styles.bar.Render(line)

	if t.tooltip == nil || !t.tooltip.Active() {
		return bar
	}

	body := t.tooltip.Body(t.width)
	if t.width > 0 {
		body = lipgloss.PlaceHorizontal(t.width, lipgloss.Right, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, body)
}

// SetWidth sets the full width of the bar in cells.
func (t *Toolbar) SetWidth(width int) {
	t.width = width
}

// SetOrigin tells the toolbar where its first cell is drawn, used to resolve mouse hovers.
func (t *Toolbar) SetOrigin(x, y int) {
	t.originX = x
	t.originY = y
}

// Height returns the number of lines the toolbar renders to.
func (t *Toolbar) Height() int {
	return lipgloss.Height(t.View())
}

// FocusSearch focuses the search box, it is a no-op in count mode.
func (t *Toolbar) FocusSearch() tea.Cmd {
	if t.search == nil {
		return nil
	}

	return t.search.Focus()
}

// SearchFocused reports whether key input is consumed by the search box.
func (t *Toolbar) SearchFocused() bool {
	return t.search != nil && t.search.Focused()
}

func (t *Toolbar) Blur() {
	if t.search != nil {
		t.search.Blur()
	}

	if t.tooltip != nil {
		t.tooltip.Blur()
	}
}

// ToggleTooltip reveals or hides the help text, it is a no-op without tooltip.
func (t *Toolbar) ToggleTooltip() {
	if t.tooltip != nil {
		t.tooltip.Toggle()
	}
}

// TooltipActive reports whether the help text is currently shown.
func (t *Toolbar) TooltipActive() bool {
	return t.tooltip != nil && t.tooltip.Active()
}
