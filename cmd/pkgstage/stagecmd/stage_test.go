package stagecmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pkgstage.run/internal/staging"
)

func writeDescriptorFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pkgstage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`packages:
- name: alpha
  namespace: a
- name: beta
  namespace: b
`), 0o644))

	return path
}

func TestStage(t *testing.T) {
	t.Parallel()

	runner := &runnerMock{}
	runner.On("StageAll", mock.Anything, mock.MatchedBy(func(cfg staging.Config) bool {
		return len(cfg.Packages) == 2
	})).Return(nil)
	factory := &runnerFactoryMock{}
	factory.On("Runner", mock.Anything).Return(runner)

	var cfg staging.Config
	cfg.Default()

	cmd := NewCmd(factory, cfg)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--packages-file", writeDescriptorFile(t)})

	require.Nil(t, cmd.Execute())
	runner.AssertNumberOfCalls(t, "StageAll", 1)
	require.Contains(t, stdout.String(), "alpha")
	require.Contains(t, stdout.String(), "beta")
}

func TestStageSelectsNamedPackages(t *testing.T) {
	t.Parallel()

	runner := &runnerMock{}
	runner.On("StageAll", mock.Anything, mock.MatchedBy(func(cfg staging.Config) bool {
		return len(cfg.Packages) == 1 && cfg.Packages[0].Name == "beta"
	})).Return(nil)
	factory := &runnerFactoryMock{}
	factory.On("Runner", mock.Anything).Return(runner)

	var cfg staging.Config
	cfg.Default()

	cmd := NewCmd(factory, cfg)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--packages-file", writeDescriptorFile(t), "beta"})

	require.Nil(t, cmd.Execute())
	runner.AssertExpectations(t)
}

func TestStageUnknownPackage(t *testing.T) {
	t.Parallel()

	factory := &runnerFactoryMock{}

	var cfg staging.Config
	cfg.Default()

	cmd := NewCmd(factory, cfg)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--packages-file", writeDescriptorFile(t), "nope"})

	require.NotNil(t, cmd.Execute())
	factory.AssertNotCalled(t, "Runner", mock.Anything)
}

func TestStageMissingDescriptorFile(t *testing.T) {
	t.Parallel()

	factory := &runnerFactoryMock{}

	var cfg staging.Config
	cfg.Default()

	cmd := NewCmd(factory, cfg)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--packages-file", filepath.Join(t.TempDir(), "missing.yaml")})

	require.NotNil(t, cmd.Execute())
}

func TestStageInvalidExcludePattern(t *testing.T) {
	t.Parallel()

	factory := &runnerFactoryMock{}

	var cfg staging.Config
	cfg.Default()

	cmd := NewCmd(factory, cfg)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--packages-file", writeDescriptorFile(t), "--exclude", "["})

	require.NotNil(t, cmd.Execute())
	factory.AssertNotCalled(t, "Runner", mock.Anything)
}

type runnerFactoryMock struct {
	mock.Mock
}

func (m *runnerFactoryMock) Runner(excludes []glob.Glob) Runner {
	args := m.Called(excludes)

	return args.Get(0).(Runner)
}

type runnerMock struct {
	mock.Mock
}

func (m *runnerMock) StageAll(ctx context.Context, cfg staging.Config) error {
	args := m.Called(ctx, cfg)

	return args.Error(0)
}
