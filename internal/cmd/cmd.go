// Package cmd houses the core operations behind the pkgstage sub-commands:
// triggering external builds, staging built packages and rendering the
// staged destination tree.
package cmd

import "errors"

var ErrInvalidArgs = errors.New("arguments invalid")
