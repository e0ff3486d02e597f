package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/disiqueira/gotree"
	"github.com/go-logr/logr"

	"pkgstage.run/internal/staging"
)

func NewTree(opts ...TreeOption) *Tree {
	var cfg TreeConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Tree{
		cfg: cfg,
	}
}

// Tree renders the staged destination directory for inspection.
type Tree struct {
	cfg TreeConfig
}

type TreeConfig struct {
	Log logr.Logger
}

func (c *TreeConfig) Option(opts ...TreeOption) {
	for _, opt := range opts {
		opt.ConfigureTree(c)
	}
}

func (c *TreeConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
}

type TreeOption interface {
	ConfigureTree(*TreeConfig)
}

// RenderDestination returns a tree view of the destination root with every
// staged namespace, manifest and artifact file.
func (t *Tree) RenderDestination(_ context.Context, cfg staging.Config) (string, error) {
	t.cfg.Log.V(1).Info("rendering destination", "path", cfg.DestRoot)

	root := gotree.New(cfg.DestRoot)
	nodes := map[string]gotree.Tree{".": root}

	walker := func(entryPath string, entry fs.DirEntry, ioErr error) error {
		switch {
		case ioErr != nil:
			return fmt.Errorf("access %s: %w", entryPath, ioErr)

		case entryPath == ".":
			// continue at root

		default:
			// WalkDir visits parents before children, the parent node
			// always exists by the time an entry is reached.
			node := nodes[path.Dir(entryPath)].Add(entry.Name())
			if entry.IsDir() {
				nodes[entryPath] = node
			}
		}

		return nil
	}

	if err := fs.WalkDir(os.DirFS(cfg.DestRoot), ".", walker); err != nil {
		return "", fmt.Errorf("walk destination %s: %w", cfg.DestRoot, err)
	}

	return root.Print(), nil
}
