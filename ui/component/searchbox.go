package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julez-dev/pinotui/save"
)

const (
	searchPrompt       = "/ "
	searchPlaceholder  = "search"
	defaultSearchWidth = 24
)

// SearchKeyMap is the key bindings for different actions within the search box.
type SearchKeyMap struct {
	Submit      key.Binding
	PrevHistory key.Binding
	NextHistory key.Binding
}

// DefaultSearchKeyMap is the default set of key bindings for the search box.
var DefaultSearchKeyMap = SearchKeyMap{
	Submit:      key.NewBinding(key.WithKeys("enter")),
	PrevHistory: key.NewBinding(key.WithKeys("ctrl+p")),
	NextHistory: key.NewBinding(key.WithKeys("ctrl+n")),
}

// SearchBox is a single line text field. It owns its text state and reports
// every change of its value through OnChange.
type SearchBox struct {
	InputModel textinput.Model
	KeyMap     SearchKeyMap

	// OnChange is called synchronously whenever an update changed the value.
	OnChange func(string)

	history        []string
	historyIndex   int
	DisableHistory bool
}

// NewSearchBox creates a new search box styled by the theme.
func NewSearchBox(theme save.Theme) *SearchBox {
	input := textinput.New()
	input.Prompt = searchPrompt
	input.Placeholder = searchPlaceholder
	input.Width = defaultSearchWidth

	input.Validate = func(s string) error {
		if strings.ContainsRune(s, '\n') {
			return fmt.Errorf("disallowed input")
		}

		return nil
	}

	input.PromptStyle = input.PromptStyle.Foreground(lipgloss.Color(theme.SearchPromptColor))
	input.PlaceholderStyle = input.PlaceholderStyle.Foreground(lipgloss.Color(theme.SearchPlaceholderColor))

	return &SearchBox{
		InputModel: input,
		KeyMap:     DefaultSearchKeyMap,
		history:    []string{},
	}
}

func (s *SearchBox) Update(msg tea.Msg) (*SearchBox, tea.Cmd) {
	if !s.InputModel.Focused() {
		return s, nil
	}

	before := s.InputModel.Value()

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.KeyMap.Submit):
			if !s.DisableHistory {
				s.pushHistory(s.InputModel.Value())
			}
			return s, nil
		case key.Matches(msg, s.KeyMap.PrevHistory) && !s.DisableHistory:
			s.historyIndex--

			if s.historyIndex < 0 {
				s.historyIndex = max(0, len(s.history)-1)
			}

			if len(s.history) > s.historyIndex {
				s.InputModel.SetValue(s.history[s.historyIndex])
				s.InputModel.CursorEnd()
			}
		case key.Matches(msg, s.KeyMap.NextHistory) && !s.DisableHistory:
			s.historyIndex++

			if s.historyIndex >= len(s.history) {
				s.historyIndex = 0
			}

			if len(s.history) > s.historyIndex {
				s.InputModel.SetValue(s.history[s.historyIndex])
				s.InputModel.CursorEnd()
			}
		default:
			s.InputModel, cmd = s.InputModel.Update(msg)
		}
	default:
		s.InputModel, cmd = s.InputModel.Update(msg)
	}

	if after := s.InputModel.Value(); after != before && s.OnChange != nil {
		s.OnChange(after)
	}

	return s, cmd
}

func (s *SearchBox) View() string {
	return s.InputModel.View()
}

func (s *SearchBox) Blur() {
	s.InputModel.Blur()
}

func (s *SearchBox) Focus() tea.Cmd {
	return s.InputModel.Focus()
}

func (s *SearchBox) Focused() bool {
	return s.InputModel.Focused()
}

func (s *SearchBox) SetWidth(width int) {
	s.InputModel.Width = max(1, width-lipgloss.Width(s.InputModel.Prompt)-1) // -1 for cursor
}

func (s *SearchBox) Value() string {
	return s.InputModel.Value()
}

// SetValue replaces the value without emitting a change.
func (s *SearchBox) SetValue(val string) {
	s.InputModel.SetValue(val)
	s.InputModel.CursorEnd()
}

func (s *SearchBox) pushHistory(val string) {
	if val == "" {
		return
	}

	if len(s.history) == 0 || s.history[len(s.history)-1] != val {
		s.history = append(s.history, val)
	}

	s.historyIndex = len(s.history)
}
