package main

import (
	"context"
	"os"
	"os/signal"

	"pkgstage.run/cmd/pkgstage/command"
)

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	os.Exit(command.Run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}
