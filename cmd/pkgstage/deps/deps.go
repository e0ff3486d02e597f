package deps

import (
	"go.uber.org/dig"

	"pkgstage.run/cmd/pkgstage/rootcmd"
)

// Build assembles the dependency container for the pkgstage command tree.
func Build(streams rootcmd.IOStreams, args []string) (*dig.Container, error) {
	container := dig.New()

	provide := append([]any{
		func() rootcmd.IOStreams { return streams },
		func() []string { return args },
	}, constructors()...)

	for _, c := range provide {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func constructors() []any {
	return []any{
		rootcmd.ProvideRootCmd,
		ProvideLogFactory,
		ProvideStagingConfig,
		ProvideStageCmd,
		ProvideBuildCmd,
		ProvideTreeCmd,
		ProvideVersionCmd,
		ProvideRunnerFactory,
		ProvideBuilderFactory,
		ProvideRendererFactory,
	}
}
