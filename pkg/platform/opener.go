package platform

import (
	"fmt"
	"os/exec"

	"github.com/datatug/fexplorer/pkg/files"
	"github.com/sirupsen/logrus"
)

var execCommand = exec.Command

// launcherCommand returns the command that opens path with its associated application.
func launcherCommand(goos, path string) (name string, args []string, ok bool) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, true
	case "darwin":
		return "open", []string{path}, true
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{path}, true
	default:
		return "", nil, false
	}
}

// OpenWithDefaultHandler blocks until the launcher exits.
func (p *Native) OpenWithDefaultHandler(path string) error {
	name, args, ok := launcherCommand(p.goos, path)
	if !ok {
		return &files.Error{
			Op:   "open",
			Path: path,
			Kind: files.UnsupportedPlatform,
			Err:  fmt.Errorf("no default handler on %s", p.goos),
		}
	}
	cmd := execCommand(name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		p.log.WithFields(logrus.Fields{
			"path":     path,
			"launcher": name,
			"output":   string(output),
		}).WithError(err).Debug("launcher failed")
		return &files.Error{Op: "open", Path: path, Kind: files.LaunchFailed, Err: err}
	}
	return nil
}
