package config

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// UserData holds per-user state persisted between runs
type UserData struct {
	LastDir   string    `json:"last_dir"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDataPath returns the location of the state file, next to the default config.
func UserDataPath() string {
	return filepath.Join(filepath.Dir(GetDefaultConfigPath()), "user.data")
}

// LoadUserData reads the state file. A missing or corrupt file yields empty state.
func LoadUserData(fsys afero.Fs, path string) *UserData {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return &UserData{}
	}

	var userData UserData
	if err := json.Unmarshal(data, &userData); err != nil {
		return &UserData{}
	}

	return &userData
}

// Save writes the state file, creating its directory as needed.
func (ud *UserData) Save(fsys afero.Fs, path string) error {
	ud.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(ud, "", "  ")
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	return afero.WriteFile(fsys, path, data, 0600)
}
