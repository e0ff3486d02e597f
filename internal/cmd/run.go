package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"pkgstage.run/internal/staging"
)

// Builder triggers the external build procedure of a single source package.
type Builder interface {
	BuildPackage(ctx context.Context, srcPath string) error
}

// Stager materializes a built package at its destination.
type Stager interface {
	StagePackage(ctx context.Context, cfg staging.Config, desc staging.PackageDescriptor) error
}

func NewRun(opts ...RunOption) *Run {
	var cfg RunConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Run{
		cfg: cfg,
	}
}

// Run executes the staging pipeline over an ordered descriptor list.
type Run struct {
	cfg RunConfig
}

type RunConfig struct {
	Log     logr.Logger
	Builder Builder
	Stager  Stager
}

func (c *RunConfig) Option(opts ...RunOption) {
	for _, opt := range opts {
		opt.ConfigureRun(c)
	}
}

func (c *RunConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
	if c.Builder == nil {
		c.Builder = NewBuild()
	}
	if c.Stager == nil {
		c.Stager = NewStage()
	}
}

type RunOption interface {
	ConfigureRun(*RunConfig)
}

// StageAll processes every configured descriptor in order: existence check,
// build, stage. Execution is strictly sequential. A failed existence check
// or build aborts the run without touching the remaining descriptors;
// per-entry warnings from staging do not.
func (r *Run) StageAll(ctx context.Context, cfg staging.Config) error {
	for _, desc := range cfg.Packages {
		src, err := filepath.Abs(cfg.SourcePath(desc))
		if err != nil {
			return fmt.Errorf("resolve source path of %s: %w", desc.Name, err)
		}

		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			return &staging.PackageNotFoundError{Name: desc.Name, Path: src}
		} else if err != nil {
			return fmt.Errorf("inspect source package %s: %w", src, err)
		}

		if err := r.cfg.Builder.BuildPackage(ctx, src); err != nil {
			return fmt.Errorf("building %s: %w", desc.Name, err)
		}

		if err := r.cfg.Stager.StagePackage(ctx, cfg, desc); err != nil {
			return fmt.Errorf("staging %s: %w", desc.Name, err)
		}
	}

	r.cfg.Log.Info("all packages staged", "count", len(cfg.Packages))

	return nil
}
