package staging

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/gobwas/glob"
)

// CopyFile duplicates the regular file at src, overwriting dst if present.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination file: %w", err)
	}

	return nil
}

// CopyTree mirrors every regular file below src into dst, creating
// destination directories as needed and overwriting existing files.
// Non-regular entries (symlinks, sockets, devices) and entries matching one
// of the exclude patterns are skipped. Failure on a single entry is reported
// on the context logger and does not stop the walk; only a walk that cannot
// proceed at all returns an error.
func CopyTree(ctx context.Context, src, dst string, excludes ...glob.Glob) error {
	log := logr.FromContextOrDiscard(ctx)

	walker := func(path string, entry fs.DirEntry, ioErr error) error {
		switch {
		case ioErr != nil:
			// Only a root that cannot be accessed stops the walk, an
			// unreadable entry below it must not take its siblings with it.
			if path == "." {
				return fmt.Errorf("access %s: %w", path, ioErr)
			}
			log.Info("unable to access entry, continuing",
				"path", path, "error", ioErr.Error())
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}

		case path == ".":
			// continue at root

		case matchesAny(path, excludes):
			log.V(1).Info("excluding entry", "path", path)
			if entry.IsDir() {
				return fs.SkipDir
			}

		case entry.IsDir():
			if err := os.MkdirAll(filepath.Join(dst, path), 0o755); err != nil {
				log.Info("skipping directory, unable to create destination",
					"path", path, "error", err.Error())
				return fs.SkipDir
			}

		case !entry.Type().IsRegular():
			log.Info("skipping non-regular entry",
				"path", path, "type", entry.Type().String())

		default:
			if err := CopyFile(
				filepath.Join(src, path), filepath.Join(dst, path),
			); err != nil {
				log.Info("unable to copy entry, continuing",
					"path", path, "error", err.Error())
			}
		}

		return nil
	}

	if err := fs.WalkDir(os.DirFS(src), ".", walker); err != nil {
		return fmt.Errorf("walk artifact tree: %w", err)
	}

	return nil
}

func matchesAny(path string, excludes []glob.Glob) bool {
	for _, g := range excludes {
		if g.Match(path) {
			return true
		}
	}

	return false
}
