// Package app implements the application layer for bazelify.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/bazelify/internal/core/domain"
	"go.trai.ch/bazelify/internal/core/ports"
	"go.trai.ch/bazelify/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	lookup   ports.PathLookup
	fs       ports.FileSystem
	logger   ports.Logger
	manifest ports.ManifestReader
}

// New creates a new App instance.
func New(
	lookup ports.PathLookup,
	fs ports.FileSystem,
	log ports.Logger,
	manifest ports.ManifestReader,
) *App {
	return &App{
		lookup:   lookup,
		fs:       fs,
		logger:   log,
		manifest: manifest,
	}
}

// ResolveOptions configures the Resolve method.
type ResolveOptions struct {
	// Concurrent runs the resolution checks concurrently.
	Concurrent bool
}

// Resolve resolves req into a verified configuration and reports on the package manifest.
func (a *App) Resolve(
	ctx context.Context,
	req domain.ResolutionRequest,
	opts ResolveOptions,
) (domain.ResolvedConfig, error) {
	resolverOpts := []resolver.Option{resolver.WithLogger(a.logger)}
	if opts.Concurrent {
		resolverOpts = append(resolverOpts, resolver.WithConcurrentChecks())
	}

	cfg, err := resolver.New(a.lookup, a.fs, resolverOpts...).Resolve(ctx, req)
	if err != nil {
		return domain.ResolvedConfig{}, zerr.Wrap(err, "failed to resolve build configuration")
	}

	a.describePackage(cfg.PackageDir())

	return cfg, nil
}

// describePackage logs what the manifest declares. A manifest that cannot be
// read is reported but does not fail resolution.
func (a *App) describePackage(packageDir string) {
	path := a.fs.Join(packageDir, domain.PubspecFileName)

	m, err := a.manifest.ReadManifest(path)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not read package manifest %s: %v", path, err))
		return
	}

	summary := "package " + m.Name
	if m.Version != "" {
		summary += " " + m.Version
	}
	if len(m.Dependencies) > 0 {
		summary += fmt.Sprintf(" (%d dependencies: %s)", len(m.Dependencies), strings.Join(m.Dependencies, ", "))
	}
	a.logger.Info(summary)
}
