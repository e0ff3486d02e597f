package cmd

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/gobwas/glob"
)

type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigureBuild(c *BuildConfig) {
	c.Log = w.Log
}

func (w WithLog) ConfigureStage(c *StageConfig) {
	c.Log = w.Log
}

func (w WithLog) ConfigureRun(c *RunConfig) {
	c.Log = w.Log
}

func (w WithLog) ConfigureTree(c *TreeConfig) {
	c.Log = w.Log
}

type WithBuildCommand []string

func (w WithBuildCommand) ConfigureBuild(c *BuildConfig) {
	c.Command = []string(w)
}

type WithStreams struct{ Out, Err io.Writer }

func (w WithStreams) ConfigureBuild(c *BuildConfig) {
	c.Out = w.Out
	c.Err = w.Err
}

type WithExcludes []glob.Glob

func (w WithExcludes) ConfigureStage(c *StageConfig) {
	c.Excludes = append(c.Excludes, w...)
}

type WithBuilder struct{ Builder Builder }

func (w WithBuilder) ConfigureRun(c *RunConfig) {
	c.Builder = w.Builder
}

type WithStager struct{ Stager Stager }

func (w WithStager) ConfigureRun(c *RunConfig) {
	c.Stager = w.Stager
}
