package save

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestSettingsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(xdg.ConfigHome, pinotuiConfigDir, settingsFileName)

	t.Run("empty file returns defaults", func(t *testing.T) {
		t.Parallel()

		settings, err := SettingsFromDisk(afero.NewMemMapFs())
		require.NoError(t, err)
		require.Equal(t, BuildDefaultSettings(), settings)
	})

	t.Run("overrides controller and view", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		content := "controller:\n  url: https://pinot.example.com\n  request_timeout: 3s\nviews:\n  instances:\n    show_search_box: true\n"
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))

		settings, err := SettingsFromDisk(fs)
		require.NoError(t, err)
		require.Equal(t, "https://pinot.example.com", settings.Controller.URL)
		require.Equal(t, 3*time.Second, settings.Controller.RequestTimeout)
		require.True(t, settings.View(ViewInstances).ShowSearchBox)
		require.True(t, settings.View(ViewTables).ShowSearchBox, "untouched views keep defaults")
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		t.Parallel()

		for _, content := range []string{
			"controller:\n  url: ftp://pinot\n",
			"views:\n  segments:\n    show_search_box: true\n",
			"views:\n  tables:\n    show_tooltip: true\n",
			"cache:\n  ttl: -1s\n",
		} {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))

			_, err := SettingsFromDisk(fs)
			require.Error(t, err, content)
		}
	})
}

func TestSettings_View(t *testing.T) {
	t.Parallel()

	s := Settings{}
	require.Equal(t, BuildDefaultSettings().Views[ViewDatabases], s.View(ViewDatabases))
}
