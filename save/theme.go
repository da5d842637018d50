package save

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	themeFileName = "theme.yaml"
)

type Theme struct {
	// SpacingUnit is the number of terminal cells one spacing step resolves to.
	SpacingUnit int `yaml:"spacing_unit"`

	ToolbarBackgroundColor string `yaml:"toolbar_background_color"`
	ToolbarTitleColor      string `yaml:"toolbar_title_color"`
	ToolbarCountColor      string `yaml:"toolbar_count_color"`

	SearchPromptColor      string `yaml:"search_prompt_color"`
	SearchPlaceholderColor string `yaml:"search_placeholder_color"`

	TooltipTriggerColor string `yaml:"tooltip_trigger_color"`
	TooltipBorderColor  string `yaml:"tooltip_border_color"`
	TooltipTextColor    string `yaml:"tooltip_text_color"`

	TableHeaderColor             string `yaml:"table_header_color"`
	TableBorderColor             string `yaml:"table_border_color"`
	TableSelectedColor           string `yaml:"table_selected_color"`
	TableSelectedBackgroundColor string `yaml:"table_selected_background_color"`

	TabHeaderBackgroundColor       string `yaml:"tab_header_background_color"`
	TabHeaderActiveBackgroundColor string `yaml:"tab_header_active_background_color"`

	ErrorColor string `yaml:"error_color"`

	// UI chrome
	DimmedTextColor string `yaml:"dimmed_text_color"`
}

func BuildDefaultTheme() Theme {
	return Theme{
		SpacingUnit: 1,

		// Toolbar
		ToolbarBackgroundColor: "#1b2a41",
		ToolbarTitleColor:      "#4285f4",
		ToolbarCountColor:      "#666666",

		// Search box
		SearchPromptColor:      "#88c0d0",
		SearchPlaceholderColor: "#4c566a",

		// Tooltip
		TooltipTriggerColor: "#81a1c1",
		TooltipBorderColor:  "#5e81ac",
		TooltipTextColor:    "#d8dee9",

		// Data table
		TableHeaderColor:             "#81a1c1",
		TableBorderColor:             "#4c566a",
		TableSelectedColor:           "#2e3440",
		TableSelectedBackgroundColor: "#88c0d0",

		// Tab headers
		TabHeaderBackgroundColor:       "#3b4252",
		TabHeaderActiveBackgroundColor: "#2e3440",

		ErrorColor: "#bf616a",

		// UI chrome
		DimmedTextColor: "#4c566a",
	}
}

// Spacing resolves n spacing steps into terminal cells.
func (t Theme) Spacing(n int) int {
	if n <= 0 || t.SpacingUnit <= 0 {
		return 0
	}

	return n * t.SpacingUnit
}

func (t Theme) validate() error {
	if t.SpacingUnit < 0 {
		return fmt.Errorf("spacing_unit must not be negative, got %d", t.SpacingUnit)
	}

	return nil
}

func ThemeFromDisk(fs afero.Fs) (Theme, error) {
	f, err := openCreateConfigFile(fs, themeFileName)
	if err != nil {
		return Theme{}, err
	}

	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return Theme{}, err
	}

	if stat.Size() == 0 {
		return BuildDefaultTheme(), nil
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return Theme{}, err
	}

	theme := BuildDefaultTheme()

	if err := yaml.Unmarshal(b, &theme); err != nil {
		return Theme{}, err
	}

	if err := theme.validate(); err != nil {
		return Theme{}, err
	}

	return theme, nil
}
