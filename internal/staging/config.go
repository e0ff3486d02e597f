package staging

import (
	"path/filepath"
)

// Config carries the repository layout the staging pipeline operates on.
// Empty fields are filled by Default. The descriptor list is supplied by the
// caller and processed in order.
type Config struct {
	// RepoRoot is the directory containing the source package directories.
	RepoRoot string `env:"PKGSTAGE_REPO_ROOT"`
	// DestRoot is the dependency directory staged packages are placed in.
	DestRoot string `env:"PKGSTAGE_DEST_ROOT"`
	// ManifestFile is the package description file copied verbatim.
	ManifestFile string `env:"PKGSTAGE_MANIFEST_FILE"`
	// ArtifactDir is the name of the build output directory mirrored per
	// package.
	ArtifactDir string `env:"PKGSTAGE_ARTIFACT_DIR"`
	// BuildCommand is the argv of the external build procedure. It is run
	// with the source package directory as working directory and must exit
	// zero on success.
	BuildCommand []string `env:"PKGSTAGE_BUILD_COMMAND" envSeparator:" "`

	Packages []PackageDescriptor
}

func (c *Config) Default() {
	if c.RepoRoot == "" {
		c.RepoRoot = "."
	}
	if c.DestRoot == "" {
		c.DestRoot = "node_modules"
	}
	if c.ManifestFile == "" {
		c.ManifestFile = "package.json"
	}
	if c.ArtifactDir == "" {
		c.ArtifactDir = "dist"
	}
	if len(c.BuildCommand) == 0 {
		c.BuildCommand = []string{"npm", "run", "build"}
	}
}

// SourcePath returns the source package directory of the given descriptor.
func (c Config) SourcePath(desc PackageDescriptor) string {
	return filepath.Join(c.RepoRoot, desc.Name)
}

// DestPath returns the destination namespace directory of the given
// descriptor.
func (c Config) DestPath(desc PackageDescriptor) string {
	return filepath.Join(c.DestRoot, desc.Namespace)
}

// Select narrows the descriptor list to the named packages, keeping the
// configured order. Naming a package not present in the list is an error.
func (c Config) Select(names []string) (Config, error) {
	known := make(map[string]struct{}, len(c.Packages))
	for _, desc := range c.Packages {
		known[desc.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := known[name]; !ok {
			return Config{}, &PackageNotConfiguredError{Name: name}
		}
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	selected := c
	selected.Packages = nil
	for _, desc := range c.Packages {
		if _, ok := wanted[desc.Name]; ok {
			selected.Packages = append(selected.Packages, desc)
		}
	}

	return selected, nil
}
