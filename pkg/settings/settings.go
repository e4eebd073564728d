// Package settings loads user preferences from a YAML file in the user directory.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const UserDir = "~/.fexplorer"
const fileName = "fexplorer.yaml"

var osUserHomeDir = os.UserHomeDir
var osReadFile = os.ReadFile
var yamlUnmarshal = yaml.Unmarshal

type Names struct {
	NewFolder string `yaml:"new_folder"`
	NewFile   string `yaml:"new_file"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

type Session struct {
	RestoreLastDir bool `yaml:"restore_last_dir"`
	PersistState   bool `yaml:"persist_state"`
}

type UI struct {
	Mouse       bool `yaml:"mouse"`
	SortEntries bool `yaml:"sort_entries"`
}

type Settings struct {
	Names   Names   `yaml:"names"`
	Log     Log     `yaml:"log"`
	Session Session `yaml:"session"`
	UI      UI      `yaml:"ui"`
}

func Default() Settings {
	return Settings{
		Names: Names{
			NewFolder: "New folder",
			NewFile:   "New file",
		},
		Log: Log{
			Level: "info",
		},
		Session: Session{
			PersistState: true,
		},
		UI: UI{
			Mouse:       true,
			SortEntries: true,
		},
	}
}

// GetUserDir resolves UserDir against the home directory.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

func DefaultPath() (string, error) {
	dir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads settings from path. Keys missing from the file keep their defaults,
// and a missing file yields defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := osReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err = yamlUnmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err = s.normalize(); err != nil {
		return Default(), fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) normalize() error {
	defaults := Default()
	s.Names.NewFolder = strings.TrimSpace(s.Names.NewFolder)
	s.Names.NewFile = strings.TrimSpace(s.Names.NewFile)
	if s.Names.NewFolder == "" {
		s.Names.NewFolder = defaults.Names.NewFolder
	}
	if s.Names.NewFile == "" {
		s.Names.NewFile = defaults.Names.NewFile
	}
	for _, name := range []string{s.Names.NewFolder, s.Names.NewFile} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("default name %q must not contain a path separator", name)
		}
	}
	if s.Log.Level == "" {
		s.Log.Level = defaults.Log.Level
	}
	return nil
}
