package save

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	pinotuiConfigDir = "pinotui"
)

// ConfigDir returns the directory all pinotui config files live in.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, pinotuiConfigDir)
}

func openCreateFile(fs afero.Fs, base string, file string) (afero.File, error) {
	// ensure config dir exists
	dir := filepath.Join(base, pinotuiConfigDir)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, file)

	f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func openCreateConfigFile(fs afero.Fs, file string) (afero.File, error) {
	return openCreateFile(fs, xdg.ConfigHome, file)
}
