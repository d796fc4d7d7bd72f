package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// mediaExtensions is the recognized set of playable extensions. Matching is
// case-sensitive: "movie.MP4" is not indexed.
var mediaExtensions = map[string]bool{
	"ogg":  true,
	"mp4":  true,
	"m4v":  true,
	"webm": true,
}

// IsSupportedMediaFile checks if the file extension is in the recognized set
func IsSupportedMediaFile(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	return mediaExtensions[ext[1:]]
}

// =============================================================================
// ListMediaFiles - List media files directly inside a directory
// =============================================================================
// Only immediate entries are considered. Entries are returned in lexical
// order (os.ReadDir sorts by name), which makes "last wins" deduplication in
// the builder deterministic.
//
// Skipped:
//   - directories and other non-regular entries (symlinks are followed)
//   - hidden files, including macOS "._" resource forks
//   - files without a recognized extension
//
// Any error reading the directory itself is returned to the caller.
// =============================================================================

func ListMediaFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if isHidden(entry.Name()) || !IsSupportedMediaFile(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if !isRegularFile(path, entry) {
			continue
		}
		files = append(files, path)
	}

	return files, nil
}

// ListDirectories lists the immediate subdirectories of root in lexical order
func ListDirectories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if isHidden(entry.Name()) || shouldSkipDirectory(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, path)
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				dirs = append(dirs, path)
			}
		}
	}

	return dirs, nil
}

// =============================================================================
// GlobMediaFiles - Recursively collect media files below a show directory
// =============================================================================
// Walks the tree in lexical order with filepath.WalkDir. Hidden entries and
// NAS/OS metadata directories are skipped. Walk errors are returned: an
// unreadable subdirectory fails the whole show.
//
// A symlinked showRoot is resolved before walking, since WalkDir does not
// descend into a link. Returned paths stay under showRoot as given.
// =============================================================================

func GlobMediaFiles(showRoot string) ([]string, error) {
	root, err := filepath.EvalSymlinks(showRoot)
	if err != nil {
		return nil, err
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if shouldSkipDirectory(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSupportedMediaFile(path) && isRegularFile(path, d) {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.Join(showRoot, rel))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// isRegularFile follows symlinks; a broken link is not a file
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// shouldSkipDirectory returns true for directories that hold metadata,
// thumbnails or other non-media content.
func shouldSkipDirectory(name string) bool {
	switch name {
	case "@eaDir", // Synology
		"@Recycle", "#recycle", // QNAP
		"$RECYCLE.BIN",
		"System Volume Information",
		"lost+found":
		return true
	}
	return false
}
