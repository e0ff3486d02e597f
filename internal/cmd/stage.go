package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/gobwas/glob"

	"pkgstage.run/internal/staging"
)

func NewStage(opts ...StageOption) *Stage {
	var cfg StageConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Stage{
		cfg: cfg,
	}
}

// Stage materializes the published shape of a built package, manifest plus
// artifact tree, under the destination namespace directory.
type Stage struct {
	cfg StageConfig
}

type StageConfig struct {
	Log      logr.Logger
	Excludes []glob.Glob
}

func (c *StageConfig) Option(opts ...StageOption) {
	for _, opt := range opts {
		opt.ConfigureStage(c)
	}
}

func (c *StageConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
}

type StageOption interface {
	ConfigureStage(*StageConfig)
}

// StagePackage copies the manifest and mirrors the artifact tree of the
// descriptor's source package into the destination namespace directory.
// Destination directories are created as needed, existing files are
// overwritten, stale files are never pruned. An artifact tree that cannot be
// walked at all only degrades to a warning: the copied manifest alone
// already yields a resolvable package and a re-run repairs the rest.
func (s *Stage) StagePackage(
	ctx context.Context, cfg staging.Config, desc staging.PackageDescriptor,
) error {
	log := s.cfg.Log.WithValues("package", desc.Name, "namespace", desc.Namespace)
	src := cfg.SourcePath(desc)
	dst := cfg.DestPath(desc)

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create destination directory %s: %w", dst, err)
	}

	manifestSrc := filepath.Join(src, cfg.ManifestFile)
	manifestDst := filepath.Join(dst, cfg.ManifestFile)
	if err := staging.CopyFile(manifestSrc, manifestDst); err != nil {
		return fmt.Errorf("copy manifest of %s: %w", desc.Name, err)
	}

	artifactDst := filepath.Join(dst, cfg.ArtifactDir)
	if err := os.MkdirAll(artifactDst, 0o755); err != nil {
		return fmt.Errorf("create artifact directory %s: %w", artifactDst, err)
	}

	treeCtx := logr.NewContext(ctx, log)
	if err := staging.CopyTree(
		treeCtx, filepath.Join(src, cfg.ArtifactDir), artifactDst, s.cfg.Excludes...,
	); err != nil {
		log.Info("artifact tree not mirrored", "error", err.Error())
	}

	log.Info("staged package", "destination", dst)

	return nil
}
