package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file (and its parents) below root
func touch(t *testing.T, root string, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestIsSupportedMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp4", true},
		{"a.m4v", true},
		{"a.ogg", true},
		{"a.webm", true},
		{"a.MP4", false},
		{"a.mkv", false},
		{"mp4", false},
		{"a.mp4.part", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupportedMediaFile(tt.path))
		})
	}
}

func TestListMediaFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.mp4")
	touch(t, root, "a.webm")
	touch(t, root, "notes.txt")
	touch(t, root, "README")
	touch(t, root, ".hidden.mp4")
	touch(t, root, "nested/c.mp4")
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir.mp4"), 0o755))

	files, err := ListMediaFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.webm"),
		filepath.Join(root, "b.mp4"),
	}, files)
}

func TestListMediaFiles_FollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	target := touch(t, t.TempDir(), "real.mp4")
	if err := os.Symlink(target, filepath.Join(root, "link.mp4")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "broken.mp4")))

	files, err := ListMediaFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "link.mp4")}, files)
}

func TestListMediaFiles_MissingRoot(t *testing.T) {
	_, err := ListMediaFiles(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Lost/S01E01.mp4")
	touch(t, root, "Fringe/S01E01.mp4")
	touch(t, root, "@eaDir/thumb.jpg")
	touch(t, root, ".Trash/x.mp4")
	touch(t, root, "loose.mp4")

	dirs, err := ListDirectories(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Fringe"),
		filepath.Join(root, "Lost"),
	}, dirs)
}

func TestGlobMediaFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Season 1/Show.S01E02.mp4")
	touch(t, root, "Season 1/Show.S01E01.mp4")
	touch(t, root, "Season 2/deep/Show.S02E01.ogg")
	touch(t, root, "Season 2/Show.S02E01.srt")
	touch(t, root, "Season 2/@eaDir/Show.S02E01.mp4")
	touch(t, root, ".cache/Show.S03E01.mp4")
	touch(t, root, "Season 1/._Show.S01E01.mp4")
	touch(t, root, "Show.S00E01.webm")

	files, err := GlobMediaFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Season 1", "Show.S01E01.mp4"),
		filepath.Join(root, "Season 1", "Show.S01E02.mp4"),
		filepath.Join(root, "Season 2", "deep", "Show.S02E01.ogg"),
		filepath.Join(root, "Show.S00E01.webm"),
	}, files)
}

func TestGlobMediaFiles_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	touch(t, target, "Season 1/Show.S01E01.mp4")

	root := t.TempDir()
	link := filepath.Join(root, "Show")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := GlobMediaFiles(link)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(link, "Season 1", "Show.S01E01.mp4")}, files)
}

func TestGlobMediaFiles_MissingRoot(t *testing.T) {
	_, err := GlobMediaFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
