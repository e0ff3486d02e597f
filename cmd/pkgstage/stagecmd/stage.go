package stagecmd

import (
	"context"
	"fmt"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkgstage.run/internal/cli"
	internalcmd "pkgstage.run/internal/cmd"
	"pkgstage.run/internal/staging"
)

type RunnerFactory interface {
	Runner(excludes []glob.Glob) Runner
}

type Runner interface {
	StageAll(ctx context.Context, cfg staging.Config) error
}

func NewCmd(runnerFactory RunnerFactory, baseCfg staging.Config) *cobra.Command {
	const (
		stageUse   = "stage [package...]"
		stageShort = "build and stage the configured packages"
		stageLong  = "builds every configured package in order and mirrors its manifest and " +
			"artifact tree into the destination dependency directory. Optional arguments " +
			"restrict the run to the named packages."
	)

	cmd := &cobra.Command{
		Use:   stageUse,
		Short: stageShort,
		Long:  stageLong,
		Args:  cobra.ArbitraryArgs,
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		pkgs, err := staging.LoadDescriptorFile(opts.PackagesFile)
		if err != nil {
			return fmt.Errorf("loading package descriptors: %w", err)
		}
		if len(pkgs) == 0 {
			return fmt.Errorf("%w: no packages configured in %s",
				internalcmd.ErrInvalidArgs, opts.PackagesFile)
		}

		cfg := baseCfg
		cfg.Packages = pkgs
		if len(args) > 0 {
			if cfg, err = cfg.Select(args); err != nil {
				return fmt.Errorf("selecting packages: %w", err)
			}
		}

		excludes := make([]glob.Glob, 0, len(opts.Excludes))
		for _, pattern := range opts.Excludes {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return fmt.Errorf("%w: invalid exclude pattern %q: %v",
					internalcmd.ErrInvalidArgs, pattern, err)
			}
			excludes = append(excludes, g)
		}

		if err := runnerFactory.Runner(excludes).StageAll(cmd.Context(), cfg); err != nil {
			return fmt.Errorf("staging packages: %w", err)
		}

		table := internalcmd.NewStagingTable()
		for _, desc := range cfg.Packages {
			table.AddRow(desc, cfg.DestPath(desc))
		}

		printer := cli.NewPrinter(
			cli.WithOut{Out: cmd.OutOrStdout()},
			cli.WithErr{Err: cmd.ErrOrStderr()},
		)

		return printer.PrintTable(table)
	}

	return cmd
}

type options struct {
	PackagesFile string
	Excludes     []string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.PackagesFile,
		"packages-file",
		"f",
		"pkgstage.yaml",
		"Path of the YAML file listing the package descriptors to stage, in order.",
	)
	flags.StringSliceVar(
		&o.Excludes,
		"exclude",
		o.Excludes,
		"Glob patterns of artifact entries to skip while mirroring. May be specified multiple times.",
	)
}
