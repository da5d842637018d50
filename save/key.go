package save

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	keyMapFileName = "keymap.yaml"
)

type KeyMap struct {
	// General
	Up      key.Binding
	Down    key.Binding
	Escape  key.Binding
	Confirm key.Binding
	Help    key.Binding

	// App Binds
	Quit        key.Binding
	OpenBrowser key.Binding

	// View Binds
	Next     key.Binding
	Previous key.Binding

	// Table Binds
	SearchMode key.Binding
	Tooltip    key.Binding
	Refresh    key.Binding
}

func BuildDefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c/q", "quit"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open controller UI in browser"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),
		SearchMode: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Tooltip: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle table help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

func (k KeyMap) saveRepresentation() saveableKeyMap {
	return saveableKeyMap{
		Up:          k.Up.Keys(),
		Down:        k.Down.Keys(),
		Escape:      k.Escape.Keys(),
		Confirm:     k.Confirm.Keys(),
		Help:        k.Help.Keys(),
		Quit:        k.Quit.Keys(),
		OpenBrowser: k.OpenBrowser.Keys(),
		Next:        k.Next.Keys(),
		Previous:    k.Previous.Keys(),
		SearchMode:  k.SearchMode.Keys(),
		Tooltip:     k.Tooltip.Keys(),
		Refresh:     k.Refresh.Keys(),
	}
}

type saveableKeyMap struct {
	Up      []string `yaml:"up,omitempty"`
	Down    []string `yaml:"down,omitempty"`
	Escape  []string `yaml:"escape,omitempty"`
	Confirm []string `yaml:"confirm,omitempty"`
	Help    []string `yaml:"help,omitempty"`

	// App Binds
	Quit        []string `yaml:"quit,omitempty"`
	OpenBrowser []string `yaml:"open_browser,omitempty"`

	// View Binds
	Next     []string `yaml:"next,omitempty"`
	Previous []string `yaml:"previous,omitempty"`

	// Table Binds
	SearchMode []string `yaml:"search_mode,omitempty"`
	Tooltip    []string `yaml:"tooltip,omitempty"`
	Refresh    []string `yaml:"refresh,omitempty"`
}

func setIfNotEmpty(b *key.Binding, keys []string) {
	if len(keys) > 0 {
		b.SetKeys(keys...)
	}
}

// apply overwrites the keys of m with every non empty entry, help texts stay untouched.
func (s saveableKeyMap) apply(m *KeyMap) {
	setIfNotEmpty(&m.Up, s.Up)
	setIfNotEmpty(&m.Down, s.Down)
	setIfNotEmpty(&m.Escape, s.Escape)
	setIfNotEmpty(&m.Confirm, s.Confirm)
	setIfNotEmpty(&m.Help, s.Help)
	setIfNotEmpty(&m.Quit, s.Quit)
	setIfNotEmpty(&m.OpenBrowser, s.OpenBrowser)
	setIfNotEmpty(&m.Next, s.Next)
	setIfNotEmpty(&m.Previous, s.Previous)
	setIfNotEmpty(&m.SearchMode, s.SearchMode)
	setIfNotEmpty(&m.Tooltip, s.Tooltip)
	setIfNotEmpty(&m.Refresh, s.Refresh)
}

func (k KeyMap) MarshalYAML() (any, error) {
	return k.saveRepresentation(), nil
}

func (k *KeyMap) UnmarshalYAML(value *yaml.Node) error {
	var s saveableKeyMap
	if err := value.Decode(&s); err != nil {
		return err
	}

	s.apply(k)
	return nil
}

func CreateReadKeyMap(fs afero.Fs) (KeyMap, error) {
	f, err := openCreateConfigFile(fs, keyMapFileName)
	if err != nil {
		return KeyMap{}, err
	}

	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return KeyMap{}, err
	}

	// Config was empty, return default config and write a default one to disk
	if stat.Size() == 0 {
		m := BuildDefaultKeyMap()

		b, err := yaml.Marshal(m)
		if err != nil {
			return KeyMap{}, err
		}

		if _, err := f.Write(b); err != nil {
			return KeyMap{}, err
		}

		return m, nil
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return KeyMap{}, err
	}

	// Config was not empty, read it on top of the defaults to keep help texts
	m := BuildDefaultKeyMap()
	if err := yaml.Unmarshal(b, &m); err != nil {
		return KeyMap{}, err
	}

	return m, nil
}
