package cmd

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pkgstage.run/internal/staging"
)

type builderMock struct {
	mock.Mock
}

func (m *builderMock) BuildPackage(ctx context.Context, srcPath string) error {
	args := m.Called(ctx, srcPath)

	return args.Error(0)
}

type stagerMock struct {
	mock.Mock
}

func (m *stagerMock) StagePackage(
	ctx context.Context, cfg staging.Config, desc staging.PackageDescriptor,
) error {
	args := m.Called(ctx, cfg, desc)

	return args.Error(0)
}

func runTestConfig(t *testing.T, descs ...staging.PackageDescriptor) staging.Config {
	t.Helper()

	cfg := staging.Config{
		RepoRoot: t.TempDir(),
		DestRoot: t.TempDir(),
		Packages: descs,
	}
	cfg.Default()

	return cfg
}

func TestStageAll(t *testing.T) {
	t.Parallel()

	cfg := runTestConfig(t,
		staging.PackageDescriptor{Name: "alpha", Namespace: "a"},
		staging.PackageDescriptor{Name: "beta", Namespace: "b"},
	)
	for _, desc := range cfg.Packages {
		require.NoError(t, os.MkdirAll(cfg.SourcePath(desc), 0o755))
	}

	builder := &builderMock{}
	builder.On("BuildPackage", mock.Anything, mock.Anything).Return(nil)
	stager := &stagerMock{}
	stager.On("StagePackage", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	run := NewRun(
		WithLog{Log: testr.New(t)},
		WithBuilder{Builder: builder},
		WithStager{Stager: stager},
	)

	require.NoError(t, run.StageAll(context.Background(), cfg))
	builder.AssertNumberOfCalls(t, "BuildPackage", 2)
	stager.AssertNumberOfCalls(t, "StagePackage", 2)
}

func TestStageAllMissingSourceAborts(t *testing.T) {
	t.Parallel()

	cfg := runTestConfig(t,
		staging.PackageDescriptor{Name: "ghost", Namespace: "g"},
		staging.PackageDescriptor{Name: "beta", Namespace: "b"},
	)
	// only beta exists on disk
	require.NoError(t, os.MkdirAll(cfg.SourcePath(cfg.Packages[1]), 0o755))

	builder := &builderMock{}
	stager := &stagerMock{}

	run := NewRun(WithBuilder{Builder: builder}, WithStager{Stager: stager})

	err := run.StageAll(context.Background(), cfg)
	require.Error(t, err)

	var notFound *staging.PackageNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "ghost", notFound.Name)

	builder.AssertNotCalled(t, "BuildPackage", mock.Anything, mock.Anything)
	stager.AssertNotCalled(t, "StagePackage", mock.Anything, mock.Anything, mock.Anything)
}

func TestStageAllBuildFailureAborts(t *testing.T) {
	t.Parallel()

	cfg := runTestConfig(t,
		staging.PackageDescriptor{Name: "alpha", Namespace: "a"},
		staging.PackageDescriptor{Name: "beta", Namespace: "b"},
	)
	for _, desc := range cfg.Packages {
		require.NoError(t, os.MkdirAll(cfg.SourcePath(desc), 0o755))
	}

	builder := &builderMock{}
	builder.On("BuildPackage", mock.Anything, mock.Anything).Return(errors.New("boom"))
	stager := &stagerMock{}

	run := NewRun(WithBuilder{Builder: builder}, WithStager{Stager: stager})

	require.Error(t, run.StageAll(context.Background(), cfg))
	// the first failed build stops the remaining descriptors
	builder.AssertNumberOfCalls(t, "BuildPackage", 1)
	stager.AssertNotCalled(t, "StagePackage", mock.Anything, mock.Anything, mock.Anything)
}

func TestStageAllStagerFailureAborts(t *testing.T) {
	t.Parallel()

	cfg := runTestConfig(t, staging.PackageDescriptor{Name: "alpha", Namespace: "a"})
	require.NoError(t, os.MkdirAll(cfg.SourcePath(cfg.Packages[0]), 0o755))

	builder := &builderMock{}
	builder.On("BuildPackage", mock.Anything, mock.Anything).Return(nil)
	stager := &stagerMock{}
	stager.On("StagePackage", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("destination unwritable"))

	run := NewRun(WithBuilder{Builder: builder}, WithStager{Stager: stager})

	require.Error(t, run.StageAll(context.Background(), cfg))
}
