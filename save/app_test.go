package save

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestAppStateManager(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		m := NewAppStateManager(afero.NewMemMapFs())

		state, err := m.LoadAppState()
		require.NoError(t, err)
		require.Equal(t, AppState{}, state)

		want := AppState{
			ActiveView: ViewSchemas,
			Database:   "sales",
			Views: []ViewState{
				{Name: ViewTables, SearchValue: "orders"},
			},
		}
		require.NoError(t, m.SaveAppState(want))

		// shorter state must not leave trailing bytes behind
		want.Views = nil
		require.NoError(t, m.SaveAppState(want))

		got, err := m.LoadAppState()
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("corrupt file is ignored", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		path := filepath.Join(xdg.ConfigHome, pinotuiConfigDir, stateFileName)
		require.NoError(t, afero.WriteFile(fs, path, []byte("{not json"), 0o600))

		state, err := NewAppStateManager(fs).LoadAppState()
		require.NoError(t, err)
		require.Equal(t, AppState{}, state)
	})
}

func TestAppState_SearchValueFor(t *testing.T) {
	t.Parallel()

	s := AppState{Views: []ViewState{{Name: ViewTables, SearchValue: "ord"}}}
	require.Equal(t, "ord", s.SearchValueFor(ViewTables))
	require.Equal(t, "", s.SearchValueFor(ViewSchemas))
}
