package treecmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pkgstage.run/internal/staging"
)

type RendererFactory interface {
	Renderer() Renderer
}

type Renderer interface {
	RenderDestination(ctx context.Context, cfg staging.Config) (string, error)
}

func NewCmd(rendererFactory RendererFactory, cfg staging.Config) *cobra.Command {
	const (
		treeUse   = "tree"
		treeShort = "output a tree view of the staged destination directory"
	)

	cmd := &cobra.Command{
		Use:   treeUse,
		Short: treeShort,
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out, err := rendererFactory.Renderer().RenderDestination(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("rendering destination: %w", err)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)

		return err
	}

	return cmd
}
