package navigation

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/fexplorer/pkg/files"
	"github.com/datatug/fexplorer/pkg/platform"
	"go.uber.org/mock/gomock"
)

type staticVolumes struct {
	volumes []platform.VolumeID
	calls   int
}

func (v *staticVolumes) ListVolumes() []platform.VolumeID {
	v.calls++
	return append([]platform.VolumeID(nil), v.volumes...)
}

func (v *staticVolumes) VolumeRoot(id platform.VolumeID) string {
	return platform.VolumeRoot(id)
}

func rootPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

func TestParent(t *testing.T) {
	t.Parallel()
	root := rootPath()
	home := filepath.Join(root, "home")
	user := filepath.Join(home, "user")

	tests := []struct {
		name   string
		path   string
		parent string
		ok     bool
	}{
		{name: "nested", path: user, parent: home, ok: true},
		{name: "trailing_separator", path: user + string(filepath.Separator), parent: home, ok: true},
		{name: "top_level", path: home, parent: root, ok: true},
		{name: "root", path: root, parent: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, ok := Parent(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.parent, parent)
		})
	}
}

func TestAscend(t *testing.T) {
	t.Parallel()
	root := rootPath()

	t.Run("has_parent", func(t *testing.T) {
		tr := Ascend(filepath.Join(root, "a", "b"))
		assert.Equal(t, Transition{Path: filepath.Join(root, "a"), Mode: Browsing}, tr)
	})

	t.Run("volume_root", func(t *testing.T) {
		tr := Ascend(root)
		assert.Equal(t, Transition{Path: root, Mode: DiskSelection, RefreshVolumes: true}, tr)
	})
}

func TestState_GoUpScenario(t *testing.T) {
	root := rootPath()
	home := filepath.Join(root, "home")
	user := filepath.Join(home, "user")
	source := &staticVolumes{volumes: []platform.VolumeID{"C", "D"}}

	s := New(user, source)
	assert.Equal(t, Browsing, s.Mode())
	assert.Equal(t, 1, source.calls)

	s.GoUp()
	assert.Equal(t, home, s.CurrentPath())
	assert.Equal(t, Browsing, s.Mode())

	s.GoUp()
	assert.Equal(t, root, s.CurrentPath())
	assert.Equal(t, Browsing, s.Mode())
	assert.Equal(t, 1, source.calls)

	source.volumes = []platform.VolumeID{"C", "D", "E"}
	tr := s.GoUp()
	assert.True(t, tr.RefreshVolumes)
	assert.Equal(t, DiskSelection, s.Mode())
	assert.Equal(t, 2, source.calls)
	assert.Equal(t, []platform.VolumeID{"C", "D", "E"}, s.KnownVolumes())

	s.GoUp()
	assert.Equal(t, DiskSelection, s.Mode())
	assert.Equal(t, 3, source.calls)
}

func TestState_GoUpFromDiskSelectionWithParent(t *testing.T) {
	root := rootPath()
	s := New(root, &staticVolumes{})
	s.GoUp()
	assert.Equal(t, DiskSelection, s.Mode())

	// A path with a parent always ascends into browsing.
	s.path = filepath.Join(root, "x")
	s.GoUp()
	assert.Equal(t, Browsing, s.Mode())
	assert.Equal(t, root, s.CurrentPath())
}

func TestState_EnterDirectory(t *testing.T) {
	root := rootPath()
	s := New(root, &staticVolumes{})
	s.GoUp()
	assert.Equal(t, DiskSelection, s.Mode())

	target := filepath.Join(root, "does", "not", "exist")
	s.EnterDirectory(target)
	assert.Equal(t, Browsing, s.Mode())
	assert.Equal(t, target, s.CurrentPath())
}

func TestState_RelativePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	s := New("sub", &staticVolumes{})
	assert.Equal(t, filepath.Join(dir, "sub"), s.CurrentPath())

	s.GoUp()
	assert.Equal(t, Browsing, s.Mode())
	assert.Equal(t, dir, s.CurrentPath())

	s.EnterDirectory(filepath.Join("a", "..", "b") + string(filepath.Separator))
	assert.Equal(t, filepath.Join(dir, "b"), s.CurrentPath())
}

func TestState_SelectVolume(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := platform.NewMockPlatform(ctrl)
	source.EXPECT().ListVolumes().Return([]platform.VolumeID{"C", "D"}).Times(2)
	source.EXPECT().VolumeRoot(platform.VolumeID("D")).Return(`D:\`)

	s := New(rootPath(), source)
	s.GoUp()
	assert.Equal(t, DiskSelection, s.Mode())

	t.Run("known", func(t *testing.T) {
		assert.NoError(t, s.SelectVolume("D"))
		assert.Equal(t, Browsing, s.Mode())
		assert.Equal(t, `D:\`, s.CurrentPath())
	})

	t.Run("unknown", func(t *testing.T) {
		before := s.CurrentPath()
		err := s.SelectVolume("Q")
		assert.True(t, errors.Is(err, files.ErrInvalidVolume))
		assert.Equal(t, before, s.CurrentPath())
		assert.Equal(t, Browsing, s.Mode())
	})
}

func TestState_RefreshVolumes(t *testing.T) {
	source := &staticVolumes{volumes: []platform.VolumeID{"C"}}
	s := New(rootPath(), source)
	assert.Equal(t, []platform.VolumeID{"C"}, s.KnownVolumes())

	source.volumes = nil
	s.RefreshVolumes()
	assert.Equal(t, 0, len(s.KnownVolumes()))
	assert.Equal(t, Browsing, s.Mode())
}

func TestState_KnownVolumesIsACopy(t *testing.T) {
	s := New(rootPath(), &staticVolumes{volumes: []platform.VolumeID{"C"}})
	v := s.KnownVolumes()
	v[0] = "Z"
	assert.Equal(t, []platform.VolumeID{"C"}, s.KnownVolumes())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "browsing", Browsing.String())
	assert.Equal(t, "disk selection", DiskSelection.String())
}
