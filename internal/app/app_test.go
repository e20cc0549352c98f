package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bazelify/internal/app"
	"go.trai.ch/bazelify/internal/core/domain"
	"go.trai.ch/bazelify/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	lookup   *mocks.MockPathLookup
	fs       *mocks.MockFileSystem
	logger   *mocks.MockLogger
	manifest *mocks.MockManifestReader
}

func newApp(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		lookup:   mocks.NewMockPathLookup(ctrl),
		fs:       mocks.NewMockFileSystem(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		manifest: mocks.NewMockManifestReader(ctrl),
	}
	return app.New(m.lookup, m.fs, m.logger, m.manifest), m
}

func TestApp_Resolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		a, m := newApp(t)

		m.lookup.EXPECT().LookPath("bazel").Return("/usr/bin/bazel", nil)
		m.lookup.EXPECT().LookPath("pub").Return("/usr/bin/pub", nil)
		m.fs.EXPECT().Join("pkg", domain.PubspecFileName).Return("pkg/pubspec.yaml").Times(2)
		m.fs.EXPECT().FileExists("pkg/pubspec.yaml").Return(true)
		m.manifest.EXPECT().ReadManifest("pkg/pubspec.yaml").Return(domain.Manifest{
			Name:         "demo",
			Version:      "1.0.0",
			Dependencies: []string{"path", "test"},
		}, nil)

		gomock.InOrder(
			m.logger.EXPECT().Info("found bazel on PATH at /usr/bin/bazel"),
			m.logger.EXPECT().Info("found pub on PATH at /usr/bin/pub"),
			m.logger.EXPECT().Info("package demo 1.0.0 (2 dependencies: path, test)"),
		)

		req := domain.NewResolutionRequest(domain.FromSearchPath(), domain.FromSearchPath(), "pkg")
		cfg, err := a.Resolve(context.Background(), req, app.ResolveOptions{})
		require.NoError(t, err)
		assert.Equal(t, domain.NewResolvedConfig("/usr/bin/bazel", "/usr/bin/pub", "pkg"), cfg)
	})

	t.Run("ManifestUnreadableOnlyWarns", func(t *testing.T) {
		a, m := newApp(t)

		m.fs.EXPECT().Join("pkg", domain.PubspecFileName).Return("pkg/pubspec.yaml").Times(2)
		m.fs.EXPECT().FileExists("pkg/pubspec.yaml").Return(true)
		m.manifest.EXPECT().ReadManifest("pkg/pubspec.yaml").Return(domain.Manifest{}, errors.New("bad yaml"))
		m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
			assert.Contains(t, msg, "bad yaml")
		})

		req := domain.NewResolutionRequest(domain.ExplicitPath("/b"), domain.ExplicitPath("/p"), "pkg")
		cfg, err := a.Resolve(context.Background(), req, app.ResolveOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/b", cfg.BazelExecutable())
	})

	t.Run("ResolutionError", func(t *testing.T) {
		a, m := newApp(t)

		m.fs.EXPECT().FileExists("/no/such/file").Return(false)

		req := domain.NewResolutionRequest(domain.ExplicitPath("/no/such/file"), domain.FromSearchPath(), "pkg")
		_, err := a.Resolve(context.Background(), req, app.ResolveOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExecutableNotFound)
		assert.Contains(t, err.Error(), "failed to resolve build configuration")
		assert.Contains(t, err.Error(), "/no/such/file")
	})

	t.Run("Concurrent", func(t *testing.T) {
		a, m := newApp(t)

		m.fs.EXPECT().FileExists("/opt/bazel").Return(true)
		m.lookup.EXPECT().LookPath("pub").Return("/usr/bin/pub", nil)
		m.fs.EXPECT().Join("pkg", domain.PubspecFileName).Return("pkg/pubspec.yaml").Times(2)
		m.fs.EXPECT().FileExists("pkg/pubspec.yaml").Return(true)
		m.manifest.EXPECT().ReadManifest("pkg/pubspec.yaml").Return(domain.Manifest{Name: "demo"}, nil)
		m.logger.EXPECT().Info(gomock.Any()).Times(2)
		m.logger.EXPECT().Info("package demo")

		req := domain.NewResolutionRequest(domain.ExplicitPath("/opt/bazel"), domain.FromSearchPath(), "pkg")
		cfg, err := a.Resolve(context.Background(), req, app.ResolveOptions{Concurrent: true})
		require.NoError(t, err)
		assert.Equal(t, domain.NewResolvedConfig("/opt/bazel", "/usr/bin/pub", "pkg"), cfg)
	})
}
