package staging

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PackageDescriptor names a source package and the namespace it is staged
// under. The source directory is <RepoRoot>/<Name>, the destination
// directory <DestRoot>/<Namespace>.
type PackageDescriptor struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
}

type descriptorFile struct {
	Packages []PackageDescriptor `yaml:"packages"`
}

// LoadDescriptorFile reads an ordered package descriptor list from a YAML
// file of the shape:
//
//	packages:
//	- name: alpha
//	  namespace: a
func LoadDescriptorFile(path string) ([]PackageDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor file: %w", err)
	}

	var file descriptorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse descriptor file %s: %w", path, err)
	}

	for i, desc := range file.Packages {
		if desc.Name == "" || desc.Namespace == "" {
			return nil, fmt.Errorf(
				"descriptor %d in %s: name and namespace must both be set", i, path)
		}
	}

	return file.Packages, nil
}
