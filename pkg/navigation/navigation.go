// Package navigation keeps track of where the browser is: the current directory,
// or the volume list when there is nowhere further up to go.
package navigation

import (
	"path/filepath"
	"slices"

	"github.com/datatug/fexplorer/pkg/files"
	"github.com/datatug/fexplorer/pkg/platform"
)

// Mode tells whether the browser shows a directory or the volume list.
type Mode int

const (
	// Browsing lists the entries of the current path.
	Browsing Mode = iota
	// DiskSelection lists volumes instead of entries.
	DiskSelection
)

func (m Mode) String() string {
	if m == DiskSelection {
		return "disk selection"
	}
	return "browsing"
}

// VolumeSource enumerates volumes and maps them to root paths.
type VolumeSource interface {
	ListVolumes() []platform.VolumeID
	VolumeRoot(id platform.VolumeID) string
}

// Transition is the outcome of going up from a path.
type Transition struct {
	Path           string
	Mode           Mode
	RefreshVolumes bool
}

// Parent returns the parent of path, or false when path is a volume root.
func Parent(path string) (string, bool) {
	cleaned := filepath.Clean(path)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return "", false
	}
	return parent, true
}

// Ascend computes where going up from path leads. Below a root it is the parent
// directory. At a root it is the volume list, which must be re-enumerated.
func Ascend(path string) Transition {
	if parent, ok := Parent(path); ok {
		return Transition{Path: parent, Mode: Browsing}
	}
	return Transition{Path: path, Mode: DiskSelection, RefreshVolumes: true}
}

// State is owned by a single session and is not safe for concurrent use.
type State struct {
	path    string
	mode    Mode
	volumes []platform.VolumeID
	source  VolumeSource
}

// New starts browsing at startPath. Volumes are enumerated once up front.
func New(startPath string, source VolumeSource) *State {
	s := &State{
		path:   absolute(startPath),
		mode:   Browsing,
		source: source,
	}
	s.RefreshVolumes()
	return s
}

func (s *State) CurrentPath() string {
	return s.path
}

func (s *State) Mode() Mode {
	return s.mode
}

// KnownVolumes returns the volumes from the last enumeration.
func (s *State) KnownVolumes() []platform.VolumeID {
	return slices.Clone(s.volumes)
}

// EnterDirectory does not check the path. A bad path shows up when it is listed.
func (s *State) EnterDirectory(path string) {
	s.path = absolute(path)
	s.mode = Browsing
}

func (s *State) GoUp() Transition {
	t := Ascend(s.path)
	s.apply(t)
	return t
}

func (s *State) SelectVolume(id platform.VolumeID) error {
	if !slices.Contains(s.volumes, id) {
		return &files.Error{Op: "select volume", Path: string(id), Kind: files.InvalidVolume}
	}
	s.apply(Transition{Path: s.source.VolumeRoot(id), Mode: Browsing})
	return nil
}

func (s *State) RefreshVolumes() {
	s.volumes = s.source.ListVolumes()
}

func (s *State) apply(t Transition) {
	s.path = t.Path
	s.mode = t.Mode
	if t.RefreshVolumes {
		s.RefreshVolumes()
	}
}

// absolute cleans path and anchors a relative one at the working directory,
// so that only a volume root is ever without a parent.
func absolute(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
