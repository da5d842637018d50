package save

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
)

// View names used as keys in settings and state.
const (
	ViewTables    = "tables"
	ViewSchemas   = "schemas"
	ViewDatabases = "databases"
	ViewInstances = "instances"
)

var AllViews = []string{ViewTables, ViewSchemas, ViewDatabases, ViewInstances}

type Settings struct {
	Controller ControllerSettings      `yaml:"controller"`
	Cache      CacheSettings           `yaml:"cache"`
	Views      map[string]ViewSettings `yaml:"views"`
}

type ControllerSettings struct {
	URL            string        `yaml:"url"`
	Database       string        `yaml:"database"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type CacheSettings struct {
	TTL time.Duration `yaml:"ttl"`
}

// ViewSettings configures the toolbar on top of a single data table.
type ViewSettings struct {
	ShowSearchBox bool   `yaml:"show_search_box"`
	ShowTooltip   bool   `yaml:"show_tooltip"`
	TooltipText   string `yaml:"tooltip_text"`
}

func BuildDefaultSettings() Settings {
	return Settings{
		Controller: ControllerSettings{
			URL:            "http://localhost:9000",
			RequestTimeout: time.Second * 10,
		},
		Cache: CacheSettings{
			TTL: time.Minute,
		},
		Views: map[string]ViewSettings{
			ViewTables: {
				ShowSearchBox: true,
				ShowTooltip:   true,
				TooltipText:   "Tables of the selected database. The size column shows the reported size of all segments.",
			},
			ViewSchemas: {
				ShowSearchBox: true,
			},
			ViewDatabases: {
				ShowSearchBox: false,
				ShowTooltip:   true,
				TooltipText:   "Press enter on a database to scope tables and schemas to it.",
			},
			ViewInstances: {
				ShowSearchBox: false,
			},
		},
	}
}

// View returns the settings for the named view, falling back to the defaults.
func (s Settings) View(name string) ViewSettings {
	if v, ok := s.Views[name]; ok {
		return v
	}

	return BuildDefaultSettings().Views[name]
}

func (s Settings) validate() error {
	if s.Controller.URL == "" {
		return fmt.Errorf("controller.url must not be empty")
	}

	u, err := url.Parse(s.Controller.URL)
	if err != nil {
		return fmt.Errorf("controller.url %q is invalid: %w", s.Controller.URL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("controller.url %q must use http or https", s.Controller.URL)
	}

	if s.Controller.RequestTimeout < 0 {
		return fmt.Errorf("controller.request_timeout must not be negative")
	}

	if s.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}

	for name, v := range s.Views {
		if !slices.Contains(AllViews, name) {
			return fmt.Errorf("unknown view %q in settings.views", name)
		}

		if v.ShowTooltip && v.TooltipText == "" {
			return fmt.Errorf("view %q enables show_tooltip but has no tooltip_text", name)
		}
	}

	return nil
}

func SettingsFromDisk(fs afero.Fs) (Settings, error) {
	f, err := openCreateConfigFile(fs, settingsFileName)
	if err != nil {
		return Settings{}, err
	}

	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return Settings{}, err
	}

	if stat.Size() == 0 {
		return BuildDefaultSettings(), nil
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return Settings{}, err
	}

	settings := BuildDefaultSettings()

	if err := yaml.Unmarshal(b, &settings); err != nil {
		return Settings{}, err
	}

	if err := settings.validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}
