package interaction

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/fexplorer/pkg/fileops"
	"github.com/datatug/fexplorer/pkg/files"
	"github.com/datatug/fexplorer/pkg/files/osfile"
	"github.com/sirupsen/logrus/hooks/test"
)

type recordingRenamer struct {
	calls []string
	err   error
}

func (r *recordingRenamer) Rename(_ context.Context, oldPath, newName string) (string, error) {
	r.calls = append(r.calls, oldPath+"->"+newName)
	if r.err != nil {
		return "", r.err
	}
	return filepath.Join(filepath.Dir(oldPath), newName), nil
}

func TestState_ContextMenu(t *testing.T) {
	s := New()
	assert.False(t, s.ContextMenu().Open)

	s.OpenContextMenu(Point{X: 3, Y: 4}, MainArea())
	menu := s.ContextMenu()
	assert.True(t, menu.Open)
	assert.Equal(t, Point{X: 3, Y: 4}, menu.Position)
	assert.True(t, menu.Target.IsMainArea())

	entry := files.NewEntry("/a", "b.txt", files.KindFile)
	s.OpenContextMenu(Point{X: 1, Y: 1}, EntryTarget(entry))
	menu = s.ContextMenu()
	assert.False(t, menu.Target.IsMainArea())
	assert.Equal(t, entry, *menu.Target.Entry)

	s.OpenContextMenu(Point{}, VolumeTarget("C"))
	assert.Equal(t, "C", string(s.ContextMenu().Target.Volume))

	s.CloseContextMenu()
	s.CloseContextMenu()
	assert.Equal(t, ContextMenu{}, s.ContextMenu())
}

func TestState_OpeningModalClosesMenu(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		s := New()
		s.OpenContextMenu(Point{X: 1}, MainArea())
		s.OpenRename("/a/old.txt", "old.txt")
		assert.False(t, s.ContextMenu().Open)
		assert.Equal(t, Modal{Kind: ModalRename, EntryPath: "/a/old.txt", ProposedName: "old.txt"}, s.Modal())
		assert.Equal(t, "old.txt", s.PendingRenameText())
	})

	t.Run("volume_info", func(t *testing.T) {
		s := New()
		s.OpenRename("/a/old.txt", "old.txt")
		s.OpenContextMenu(Point{X: 1}, VolumeTarget("D"))
		s.OpenVolumeInfo("D")
		assert.False(t, s.ContextMenu().Open)
		assert.Equal(t, Modal{Kind: ModalVolumeInfo, Volume: "D"}, s.Modal())
		assert.Equal(t, "", s.PendingRenameText())
	})
}

func TestState_PrimaryClickOutside(t *testing.T) {
	s := New()
	s.OpenRename("/a/old.txt", "old.txt")
	s.OpenContextMenu(Point{X: 5, Y: 5}, MainArea())

	s.PrimaryClickOutside()
	assert.False(t, s.ContextMenu().Open)
	assert.Equal(t, ModalRename, s.Modal().Kind)
}

func TestState_PendingRenameTextIgnoredWithoutModal(t *testing.T) {
	s := New()
	s.SetPendingRenameText("x")
	assert.Equal(t, "", s.PendingRenameText())
}

func TestState_ConfirmRename(t *testing.T) {
	ctx := context.Background()

	t.Run("success_closes_modal", func(t *testing.T) {
		s := New()
		r := &recordingRenamer{}
		s.OpenRename("/a/old.txt", "old.txt")
		s.SetPendingRenameText("new.txt")
		newPath, err := s.ConfirmRename(ctx, r)
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join("/a", "new.txt"), newPath)
		assert.Equal(t, []string{"/a/old.txt->new.txt"}, r.calls)
		assert.Equal(t, ModalClosed, s.Modal().Kind)
	})

	t.Run("failure_keeps_modal_and_text", func(t *testing.T) {
		s := New()
		r := &recordingRenamer{err: &files.Error{Kind: files.AlreadyExists}}
		s.OpenRename("/a/old.txt", "old.txt")
		s.SetPendingRenameText("taken.txt")

		_, err := s.ConfirmRename(ctx, r)
		assert.True(t, errors.Is(err, files.ErrAlreadyExists))
		assert.Equal(t, ModalRename, s.Modal().Kind)
		assert.Equal(t, "taken.txt", s.PendingRenameText())

		_, err = s.ConfirmRename(ctx, r)
		assert.Error(t, err)
		assert.Equal(t, 2, len(r.calls))
		assert.Equal(t, "taken.txt", s.PendingRenameText())
	})

	t.Run("without_modal", func(t *testing.T) {
		s := New()
		r := &recordingRenamer{}
		_, err := s.ConfirmRename(ctx, r)
		assert.True(t, errors.Is(err, ErrNoPendingRename))
		assert.Equal(t, 0, len(r.calls))

		s.OpenVolumeInfo("C")
		_, err = s.ConfirmRename(ctx, r)
		assert.True(t, errors.Is(err, ErrNoPendingRename))
		assert.Equal(t, ModalVolumeInfo, s.Modal().Kind)
	})
}

func TestState_ConfirmRenameOnDisk(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	assert.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o644))
	log, _ := test.NewNullLogger()
	x := fileops.NewExecutor(osfile.NewStore(), nil, log)

	s := New()
	s.OpenRename(oldPath, "old.txt")
	s.SetPendingRenameText("new.txt")
	_, err := s.ConfirmRename(context.Background(), x)
	assert.NoError(t, err)

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "new.txt"))
	assert.NoError(t, err)
	assert.Equal(t, ModalClosed, s.Modal().Kind)
}

func TestState_CloseModalDiscardsText(t *testing.T) {
	s := New()
	s.OpenRename("/a/old.txt", "old.txt")
	s.SetPendingRenameText("draft")
	s.CloseModal()
	assert.Equal(t, Modal{}, s.Modal())
	s.OpenRename("/a/other.txt", "other.txt")
	assert.Equal(t, "other.txt", s.PendingRenameText())
}
