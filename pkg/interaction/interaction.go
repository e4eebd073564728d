// Package interaction tracks transient UI state: the context menu and the single modal.
package interaction

import (
	"context"
	"errors"

	"github.com/datatug/fexplorer/pkg/files"
	"github.com/datatug/fexplorer/pkg/platform"
)

type Point struct {
	X, Y int
}

// MenuTarget is what a context menu was opened on.
// Zero value is the main area.
type MenuTarget struct {
	Entry  *files.Entry
	Volume platform.VolumeID
}

func (t MenuTarget) IsMainArea() bool {
	return t.Entry == nil && t.Volume == ""
}

func MainArea() MenuTarget {
	return MenuTarget{}
}

func EntryTarget(entry files.Entry) MenuTarget {
	return MenuTarget{Entry: &entry}
}

func VolumeTarget(id platform.VolumeID) MenuTarget {
	return MenuTarget{Volume: id}
}

type ContextMenu struct {
	Open     bool
	Position Point
	Target   MenuTarget
}

type ModalKind int

const (
	ModalClosed ModalKind = iota
	ModalRename
	ModalVolumeInfo
)

type Modal struct {
	Kind ModalKind
	// EntryPath and ProposedName are set for ModalRename.
	EntryPath    string
	ProposedName string
	// Volume is set for ModalVolumeInfo.
	Volume platform.VolumeID
}

// Renamer performs the rename a confirmed rename modal asks for.
type Renamer interface {
	Rename(ctx context.Context, oldPath, newName string) (string, error)
}

var ErrNoPendingRename = errors.New("no rename in progress")

// State holds at most one open modal and one context menu.
type State struct {
	menu          ContextMenu
	modal         Modal
	pendingRename string
}

func New() *State {
	return &State{}
}

func (s *State) ContextMenu() ContextMenu {
	return s.menu
}

func (s *State) Modal() Modal {
	return s.modal
}

// PendingRenameText is meaningful only while a rename modal is open.
func (s *State) PendingRenameText() string {
	if s.modal.Kind != ModalRename {
		return ""
	}
	return s.pendingRename
}

func (s *State) SetPendingRenameText(text string) {
	if s.modal.Kind != ModalRename {
		return
	}
	s.pendingRename = text
}

func (s *State) OpenContextMenu(pos Point, target MenuTarget) {
	s.menu = ContextMenu{Open: true, Position: pos, Target: target}
}

func (s *State) CloseContextMenu() {
	s.menu = ContextMenu{}
}

func (s *State) OpenRename(entryPath, currentName string) {
	s.openModal(Modal{Kind: ModalRename, EntryPath: entryPath, ProposedName: currentName})
	s.pendingRename = currentName
}

func (s *State) OpenVolumeInfo(id platform.VolumeID) {
	s.openModal(Modal{Kind: ModalVolumeInfo, Volume: id})
}

// ConfirmRename renames to the pending text. On failure the modal stays open
// with the text intact so the user can correct it and try again.
func (s *State) ConfirmRename(ctx context.Context, renamer Renamer) (string, error) {
	if s.modal.Kind != ModalRename {
		return "", ErrNoPendingRename
	}
	newPath, err := renamer.Rename(ctx, s.modal.EntryPath, s.pendingRename)
	if err != nil {
		return "", err
	}
	s.CloseModal()
	return newPath, nil
}

func (s *State) CloseModal() {
	s.modal = Modal{}
	s.pendingRename = ""
}

// PrimaryClickOutside dismisses the context menu. An open modal is left alone:
// modals close only on an explicit action.
func (s *State) PrimaryClickOutside() {
	s.CloseContextMenu()
}

func (s *State) openModal(m Modal) {
	s.CloseContextMenu()
	s.modal = m
}
