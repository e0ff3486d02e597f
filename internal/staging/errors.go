package staging

import "fmt"

// PackageNotFoundError reports a descriptor whose source directory does not
// exist. A missing source indicates a misconfigured repository layout rather
// than a transient condition, so it aborts the whole run.
type PackageNotFoundError struct {
	Name string
	Path string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("source package %s not found at %s", e.Name, e.Path)
}

// PackageNotConfiguredError reports selection of a package name that is not
// part of the configured descriptor list.
type PackageNotConfiguredError struct {
	Name string
}

func (e *PackageNotConfiguredError) Error() string {
	return fmt.Sprintf("package %s is not configured", e.Name)
}

// BuildFailedError reports a non-zero exit of the external build procedure.
// The build output has already been streamed to the process streams.
type BuildFailedError struct {
	Path string
	Err  error
}

func (e *BuildFailedError) Unwrap() error { return e.Err }

func (e *BuildFailedError) Error() string {
	return fmt.Sprintf("build in %s failed: %v", e.Path, e.Err)
}
