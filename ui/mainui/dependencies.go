package mainui

import (
	"github.com/julez-dev/pinotui/save"
	"github.com/julez-dev/pinotui/ui/tableview"
)

type UserConfiguration struct {
	Settings save.Settings
	Theme    save.Theme
}

type AppStateManager interface {
	LoadAppState() (save.AppState, error)
	SaveAppState(save.AppState) error
}

type DependencyContainer struct {
	UserConfig UserConfiguration
	Keymap     save.KeyMap

	// Database overrides the database restored from the app state when set.
	Database string

	// SourceFor returns the listing source scoped to the given database.
	SourceFor func(database string) tableview.Source

	// OpenURL opens the controller UI, usually browser.OpenURL.
	OpenURL func(url string) error

	AppStateManager AppStateManager
}
