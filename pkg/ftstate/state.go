// Package ftstate remembers the last browsed directory between runs.
package ftstate

import (
	"os"
	"path/filepath"

	"github.com/datatug/fexplorer/pkg/fsutils"
	"github.com/datatug/fexplorer/pkg/settings"
	"github.com/sirupsen/logrus"
)

const stateFileName = "fexplorer-state.json"

var settingsDirPath = fsutils.ExpandHome(settings.UserDir)

type State struct {
	CurrentDir string `json:"current_dir,omitempty"`
	Mode       string `json:"mode,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(msg string, err error) {
	logrus.WithError(err).Warn(msg)
}

// SetLogger routes persistence failures to log.
func SetLogger(log logrus.FieldLogger) {
	logErr = func(msg string, err error) {
		log.WithError(err).Warn(msg)
	}
}

func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

func GetCurrentDir() string {
	var state State
	filePath := getStateFilePath()
	_ = readJSON(filePath, false, &state)
	return state.CurrentDir
}

// SaveCurrentDir persists where the user is. Failures are logged, not returned.
func SaveCurrentDir(currentDir, mode string) {
	saveSettingValue(func(state *State) {
		state.CurrentDir = currentDir
		state.Mode = mode
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	err := readJSON(filePath, false, &state)
	if err != nil {
		logErr("SaveCurrentDir: error reading state file", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("SaveCurrentDir: error creating settings directory", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("SaveCurrentDir: settings path is not a directory", os.ErrInvalid)
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("SaveCurrentDir: error writing state file", err)
		return
	}
}
