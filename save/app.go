package save

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/afero"
)

const (
	stateFileName = "state.json"
)

type AppState struct {
	ActiveView string      `json:"active_view"`
	Database   string      `json:"database"`
	Views      []ViewState `json:"views"`
}

type ViewState struct {
	Name        string `json:"name"`
	SearchValue string `json:"search_value"`
}

// SearchValueFor returns the stored search value of the named view.
func (a AppState) SearchValueFor(name string) string {
	for _, v := range a.Views {
		if v.Name == name {
			return v.SearchValue
		}
	}

	return ""
}

type AppStateManager struct {
	fs afero.Fs
}

func NewAppStateManager(fs afero.Fs) *AppStateManager {
	return &AppStateManager{fs: fs}
}

func (a *AppStateManager) SaveAppState(state AppState) error {
	f, err := openCreateConfigFile(a.fs, stateFileName)
	if err != nil {
		return err
	}

	defer f.Close()

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	err = f.Truncate(0)
	if err != nil {
		return err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	_, err = io.Copy(f, bytes.NewReader(data))
	if err != nil {
		return err
	}

	return nil
}

func (a *AppStateManager) LoadAppState() (AppState, error) {
	f, err := openCreateConfigFile(a.fs, stateFileName)
	if err != nil {
		return AppState{}, err
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return AppState{}, err
	}

	if len(data) == 0 {
		return AppState{}, nil
	}

	state := AppState{}
	err = json.Unmarshal(data, &state)
	if err != nil {
		syntaxErr := &json.SyntaxError{}
		if errors.As(err, &syntaxErr) {
			return AppState{}, nil
		}
		return AppState{}, err
	}

	return state, nil
}
