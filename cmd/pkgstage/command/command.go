package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pkgstage.run/cmd/pkgstage/deps"
	"pkgstage.run/cmd/pkgstage/rootcmd"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
)

// Run wires the command tree and executes the sub-command selected by args.
func Run(ctx context.Context, inReader io.Reader, outWriter, errWriter io.Writer, args []string) int {
	streams := rootcmd.IOStreams{
		In:     inReader,
		Out:    outWriter,
		ErrOut: errWriter,
	}

	container, err := deps.Build(streams, args)
	if err != nil {
		fmt.Fprintln(errWriter, err)

		return ReturnCodeError
	}

	err = container.Invoke(func(cmd *cobra.Command) error {
		return cmd.ExecuteContext(ctx)
	})
	if err != nil {
		return ReturnCodeError
	}

	return ReturnCodeSuccess
}
