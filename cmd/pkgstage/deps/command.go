package deps

import (
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"pkgstage.run/cmd/pkgstage/buildcmd"
	"pkgstage.run/cmd/pkgstage/rootcmd"
	"pkgstage.run/cmd/pkgstage/stagecmd"
	"pkgstage.run/cmd/pkgstage/treecmd"
	"pkgstage.run/cmd/pkgstage/versioncmd"
	internalcmd "pkgstage.run/internal/cmd"
	"pkgstage.run/internal/staging"
)

type RootSubCommandResult struct {
	dig.Out

	SubCommand *cobra.Command `group:"rootSubCommands"`
}

func ProvideStageCmd(runnerFactory stagecmd.RunnerFactory, cfg staging.Config) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: stagecmd.NewCmd(
			runnerFactory,
			cfg,
		),
	}
}

func ProvideRunnerFactory(
	cfg staging.Config, streams rootcmd.IOStreams, f LogFactory,
) stagecmd.RunnerFactory {
	return &defaultRunnerFactory{
		cfg:        cfg,
		streams:    streams,
		logFactory: f,
	}
}

type defaultRunnerFactory struct {
	cfg        staging.Config
	streams    rootcmd.IOStreams
	logFactory LogFactory
}

func (f *defaultRunnerFactory) Runner(excludes []glob.Glob) stagecmd.Runner {
	log := f.logFactory.Logger()

	return internalcmd.NewRun(
		internalcmd.WithLog{Log: log},
		internalcmd.WithBuilder{Builder: internalcmd.NewBuild(
			internalcmd.WithLog{Log: log},
			internalcmd.WithBuildCommand(f.cfg.BuildCommand),
			internalcmd.WithStreams{Out: f.streams.Out, Err: f.streams.ErrOut},
		)},
		internalcmd.WithStager{Stager: internalcmd.NewStage(
			internalcmd.WithLog{Log: log},
			internalcmd.WithExcludes(excludes),
		)},
	)
}

func ProvideBuildCmd(builderFactory buildcmd.BuilderFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: buildcmd.NewCmd(
			builderFactory,
		),
	}
}

func ProvideBuilderFactory(
	cfg staging.Config, streams rootcmd.IOStreams, f LogFactory,
) buildcmd.BuilderFactory {
	return &defaultBuilderFactory{
		cfg:        cfg,
		streams:    streams,
		logFactory: f,
	}
}

type defaultBuilderFactory struct {
	cfg        staging.Config
	streams    rootcmd.IOStreams
	logFactory LogFactory
}

func (f *defaultBuilderFactory) Builder() buildcmd.Builder {
	return internalcmd.NewBuild(
		internalcmd.WithLog{Log: f.logFactory.Logger()},
		internalcmd.WithBuildCommand(f.cfg.BuildCommand),
		internalcmd.WithStreams{Out: f.streams.Out, Err: f.streams.ErrOut},
	)
}

func ProvideTreeCmd(rendererFactory treecmd.RendererFactory, cfg staging.Config) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: treecmd.NewCmd(
			rendererFactory,
			cfg,
		),
	}
}

func ProvideRendererFactory(f LogFactory) treecmd.RendererFactory {
	return &defaultRendererFactory{
		logFactory: f,
	}
}

type defaultRendererFactory struct {
	logFactory LogFactory
}

func (f *defaultRendererFactory) Renderer() treecmd.Renderer {
	return internalcmd.NewTree(
		internalcmd.WithLog{Log: f.logFactory.Logger()},
	)
}

func ProvideVersionCmd() RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: versioncmd.NewCmd(),
	}
}
