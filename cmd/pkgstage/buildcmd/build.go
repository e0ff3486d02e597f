package buildcmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	internalcmd "pkgstage.run/internal/cmd"
)

type BuilderFactory interface {
	Builder() Builder
}

type Builder interface {
	BuildPackage(ctx context.Context, srcPath string) error
}

func NewCmd(builderFactory BuilderFactory) *cobra.Command {
	const (
		buildUse   = "build source_path"
		buildShort = "run the external build procedure for a single package"
		buildLong  = "runs the configured build command with the given package directory as " +
			"working directory, streaming its output. No staging is performed."
	)

	cmd := &cobra.Command{
		Use:   buildUse,
		Short: buildShort,
		Long:  buildLong,
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if src == "" {
			return fmt.Errorf("%w: source path empty", internalcmd.ErrInvalidArgs)
		}

		absSrc, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("resolving source path: %w", err)
		}

		if err := builderFactory.Builder().BuildPackage(cmd.Context(), absSrc); err != nil {
			return fmt.Errorf("building package: %w", err)
		}

		return nil
	}

	return cmd
}
