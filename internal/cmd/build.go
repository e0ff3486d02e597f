package cmd

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"

	"pkgstage.run/internal/staging"
)

func NewBuild(opts ...BuildOption) *Build {
	var cfg BuildConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Build{
		cfg: cfg,
	}
}

// Build triggers the external build procedure of a source package.
type Build struct {
	cfg BuildConfig
}

type BuildConfig struct {
	Log     logr.Logger
	Command []string
	Out     io.Writer
	Err     io.Writer
}

func (c *BuildConfig) Option(opts ...BuildOption) {
	for _, opt := range opts {
		opt.ConfigureBuild(c)
	}
}

func (c *BuildConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
	if len(c.Command) == 0 {
		c.Command = []string{"npm", "run", "build"}
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
}

type BuildOption interface {
	ConfigureBuild(*BuildConfig)
}

// BuildPackage runs the configured build command with srcPath as working
// directory, output streamed directly to the configured streams. It returns
// normally only if the build exits with a success status.
func (b *Build) BuildPackage(ctx context.Context, srcPath string) error {
	b.cfg.Log.Info("building package",
		"path", srcPath, "command", strings.Join(b.cfg.Command, " "))

	buildCmd := exec.CommandContext(ctx, b.cfg.Command[0], b.cfg.Command[1:]...)
	buildCmd.Dir = srcPath
	buildCmd.Stdout = b.cfg.Out
	buildCmd.Stderr = b.cfg.Err

	if err := buildCmd.Run(); err != nil {
		return &staging.BuildFailedError{Path: srcPath, Err: err}
	}

	b.cfg.Log.Info("build finished", "path", srcPath)

	return nil
}
