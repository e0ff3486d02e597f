package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDescriptorFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pkgstage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`packages:
- name: alpha
  namespace: a
- name: beta
  namespace: b
`), 0o644))

	pkgs, err := LoadDescriptorFile(path)
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, PackageDescriptor{Name: "alpha", Namespace: "a"}, pkgs[0])
	assert.Equal(t, PackageDescriptor{Name: "beta", Namespace: "b"}, pkgs[1])
}

func TestLoadDescriptorFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadDescriptorFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadDescriptorFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pkgstage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: {"), 0o644))

	_, err := LoadDescriptorFile(path)
	require.Error(t, err)
}

func TestLoadDescriptorFileIncompleteDescriptor(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pkgstage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`packages:
- name: alpha
`), 0o644))

	_, err := LoadDescriptorFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace")
}
