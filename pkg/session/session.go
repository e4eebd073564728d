// Package session ties the browser state together for a single window.
// A Session is driven from one event loop and is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/datatug/fexplorer/pkg/fileops"
	"github.com/datatug/fexplorer/pkg/files"
	"github.com/datatug/fexplorer/pkg/fsutils"
	"github.com/datatug/fexplorer/pkg/ftstate"
	"github.com/datatug/fexplorer/pkg/interaction"
	"github.com/datatug/fexplorer/pkg/navigation"
	"github.com/datatug/fexplorer/pkg/platform"
	"github.com/datatug/fexplorer/pkg/settings"
	"github.com/sirupsen/logrus"
)

var osGetwd = os.Getwd
var filepathAbs = filepath.Abs
var getPersistedDir = ftstate.GetCurrentDir
var saveCurrentDir = ftstate.SaveCurrentDir
var volumeUsage = platform.VolumeUsage

var errNotBrowsing = errors.New("not browsing a directory")

type Options struct {
	// StartDir overrides the working directory as the first location.
	StartDir string
	Settings settings.Settings
	Platform platform.Platform
	Store    files.Store
	Logger   logrus.FieldLogger
}

type Session struct {
	nav         *navigation.State
	interaction *interaction.State
	exec        *fileops.Executor
	store       files.Store
	lister      *files.Lister
	platform    platform.Platform
	settings    settings.Settings
	log         logrus.FieldLogger
	notices     notifications
	search      string
}

func New(o Options) (*Session, error) {
	if o.Platform == nil {
		return nil, errors.New("platform is required")
	}
	if o.Store == nil {
		return nil, errors.New("store is required")
	}
	if o.Settings == (settings.Settings{}) {
		o.Settings = settings.Default()
	}
	log := o.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	startDir, err := startDirectory(o, log)
	if err != nil {
		return nil, err
	}
	s := &Session{
		nav:         navigation.New(startDir, o.Platform),
		interaction: interaction.New(),
		exec:        fileops.NewExecutor(o.Store, o.Platform, log),
		store:       o.Store,
		lister:      files.NewLister(log),
		platform:    o.Platform,
		settings:    o.Settings,
		log:         log,
	}
	log.WithField("dir", startDir).Debug("session started")
	return s, nil
}

func startDirectory(o Options, log logrus.FieldLogger) (string, error) {
	if o.StartDir != "" {
		dir, err := filepathAbs(fsutils.ExpandHome(o.StartDir))
		if err != nil {
			return "", fmt.Errorf("failed to resolve start directory %q: %w", o.StartDir, err)
		}
		return dir, nil
	}
	if o.Settings.Session.RestoreLastDir {
		if dir := getPersistedDir(); dir != "" {
			if exists, err := fsutils.DirExists(dir); exists && filepath.IsAbs(dir) {
				return dir, nil
			} else if err != nil {
				log.WithError(err).WithField("dir", dir).Debug("can not restore last directory")
			}
		}
	}
	dir, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return dir, nil
}

// RootTitle names the machine whose files are browsed.
func (s *Session) RootTitle() string {
	return s.store.RootTitle()
}

func (s *Session) CurrentPath() string {
	return s.nav.CurrentPath()
}

func (s *Session) Mode() navigation.Mode {
	return s.nav.Mode()
}

func (s *Session) KnownVolumes() []platform.VolumeID {
	return s.nav.KnownVolumes()
}

func (s *Session) Interaction() *interaction.State {
	return s.interaction
}

func (s *Session) Settings() settings.Settings {
	return s.settings
}

// List reads the current directory afresh. Unreadable children are left out.
func (s *Session) List() ([]files.Entry, error) {
	if s.nav.Mode() != navigation.Browsing {
		return nil, errNotBrowsing
	}
	listing, err := s.lister.List(s.nav.CurrentPath())
	if err != nil {
		return nil, err
	}
	entries := slices.Collect(listing.Entries())
	return entries, listing.Err()
}

// SetSearch stores the search text. Entries are not filtered by it.
func (s *Session) SetSearch(text string) {
	s.search = text
}

func (s *Session) Search() string {
	return s.search
}

func (s *Session) EnterDirectory(path string) {
	s.nav.EnterDirectory(path)
	s.navigated()
}

func (s *Session) GoUp() navigation.Transition {
	t := s.nav.GoUp()
	s.navigated()
	return t
}

func (s *Session) SelectVolume(id platform.VolumeID) error {
	if err := s.nav.SelectVolume(id); err != nil {
		return s.failed(err)
	}
	s.navigated()
	return nil
}

func (s *Session) RefreshVolumes() []platform.VolumeID {
	s.nav.RefreshVolumes()
	return s.nav.KnownVolumes()
}

// Open enters a directory or hands a file to its default application.
func (s *Session) Open(entry files.Entry) error {
	if entry.IsDir() {
		s.EnterDirectory(entry.FullPath)
		return nil
	}
	if err := s.exec.OpenWithDefaultHandler(entry.FullPath); err != nil {
		return s.failed(err)
	}
	return nil
}

func (s *Session) CreateDirectory() (string, error) {
	return s.create(s.exec.CreateDirectory, s.settings.Names.NewFolder)
}

func (s *Session) CreateFile() (string, error) {
	return s.create(s.exec.CreateFile, s.settings.Names.NewFile)
}

type createFunc func(ctx context.Context, parent, name string) (string, error)

func (s *Session) create(create createFunc, name string) (string, error) {
	s.interaction.CloseContextMenu()
	if s.nav.Mode() != navigation.Browsing {
		return "", s.failed(errNotBrowsing)
	}
	path, err := create(context.Background(), s.nav.CurrentPath(), name)
	if err != nil {
		return "", s.failed(err)
	}
	s.notices.info("Created " + name)
	return path, nil
}

func (s *Session) DeleteEntry(entry files.Entry) error {
	s.interaction.CloseContextMenu()
	if err := s.exec.Delete(context.Background(), entry.FullPath, entry.Kind); err != nil {
		return s.failed(err)
	}
	s.notices.info("Deleted " + entry.Name)
	return nil
}

func (s *Session) OpenContextMenu(pos interaction.Point, target interaction.MenuTarget) {
	s.interaction.OpenContextMenu(pos, target)
}

// PrimaryClick dismisses the context menu but never a modal.
func (s *Session) PrimaryClick() {
	s.interaction.PrimaryClickOutside()
}

func (s *Session) OpenRename(entry files.Entry) {
	s.interaction.OpenRename(entry.FullPath, entry.Name)
}

func (s *Session) SetRenameText(text string) {
	s.interaction.SetPendingRenameText(text)
}

// ConfirmRename keeps the rename modal open when the rename fails.
func (s *Session) ConfirmRename() (string, error) {
	newPath, err := s.interaction.ConfirmRename(context.Background(), s.exec)
	if err != nil {
		return "", s.failed(err)
	}
	return newPath, nil
}

func (s *Session) OpenVolumeInfo(id platform.VolumeID) {
	s.interaction.OpenVolumeInfo(id)
}

// VolumeInfo reports capacity of a volume for the info modal.
func (s *Session) VolumeInfo(id platform.VolumeID) (platform.Usage, error) {
	usage, err := volumeUsage(s.platform.VolumeRoot(id))
	if err != nil {
		return usage, s.failed(err)
	}
	return usage, nil
}

func (s *Session) CloseModal() {
	s.interaction.CloseModal()
}

func (s *Session) Notifications() []Notification {
	return s.notices.all()
}

// LastNotification returns the most recent notification, if any.
func (s *Session) LastNotification() (Notification, bool) {
	return s.notices.last()
}

func (s *Session) failed(err error) error {
	s.notices.error(err)
	return err
}

func (s *Session) navigated() {
	if !s.settings.Session.PersistState {
		return
	}
	saveCurrentDir(s.nav.CurrentPath(), s.nav.Mode().String())
}
