// Package resolver turns a resolution request into a verified configuration.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/bazelify/internal/core/domain"
	"go.trai.ch/bazelify/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves executable paths and validates the package directory.
type Resolver struct {
	lookup     ports.PathLookup
	fs         ports.FileSystem
	logger     ports.Logger
	concurrent bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConcurrentChecks runs the executable and pubspec checks concurrently.
// When more than one check fails, which error is reported is not defined.
func WithConcurrentChecks() Option {
	return func(r *Resolver) {
		r.concurrent = true
	}
}

// WithLogger reports each resolved executable through logger.
func WithLogger(logger ports.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a new Resolver.
func New(lookup ports.PathLookup, fs ports.FileSystem, opts ...Option) *Resolver {
	r := &Resolver{
		lookup: lookup,
		fs:     fs,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsResolved reports whether both executables were given explicitly.
func IsResolved(req domain.ResolutionRequest) bool {
	return req.Bazel().IsExplicit() && req.Pub().IsExplicit()
}

// Resolve produces a ResolvedConfig for req or fails on the first check that does not pass.
//
// Explicit executable paths are verified to name existing files unless both
// executables are explicit, in which case they are taken as given. The package
// directory must contain a pubspec.yaml in either case.
func (r *Resolver) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.ResolvedConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.ResolvedConfig{}, err
	}

	if IsResolved(req) {
		bazel, _ := req.Bazel().Path()
		pub, _ := req.Pub().Path()
		if err := r.checkPubspec(req.PackageDir()); err != nil {
			return domain.ResolvedConfig{}, err
		}
		return domain.NewResolvedConfig(bazel, pub, req.PackageDir()), nil
	}

	var bazel, pub string
	checks := []func() error{
		func() (err error) {
			bazel, err = r.resolveExecutable(req.Bazel(), domain.BazelProgram)
			return err
		},
		func() (err error) {
			pub, err = r.resolveExecutable(req.Pub(), domain.PubProgram)
			return err
		},
		func() error {
			return r.checkPubspec(req.PackageDir())
		},
	}

	if err := r.run(ctx, checks); err != nil {
		return domain.ResolvedConfig{}, err
	}

	return domain.NewResolvedConfig(bazel, pub, req.PackageDir()), nil
}

func (r *Resolver) run(ctx context.Context, checks []func() error) error {
	if !r.concurrent {
		for _, check := range checks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := check(); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return check()
		})
	}
	return g.Wait()
}

func (r *Resolver) resolveExecutable(src domain.ExecutableSource, program string) (string, error) {
	if path, ok := src.Path(); ok {
		if !r.fs.FileExists(path) {
			return "", zerr.With(
				zerr.Wrap(domain.ErrExecutableNotFound, fmt.Sprintf("%s executable %q does not exist", program, path)),
				"path", path,
			)
		}
		r.info(fmt.Sprintf("using %s at %s", program, path))
		return path, nil
	}

	path, err := r.lookup.LookPath(program)
	if err != nil || path == "" {
		msg := fmt.Sprintf("%s was not given and could not be found on PATH", program)
		if err != nil {
			msg += ": " + err.Error()
		}
		return "", zerr.With(zerr.Wrap(domain.ErrExecutableUnresolvable, msg), "program", program)
	}
	r.info(fmt.Sprintf("found %s on PATH at %s", program, path))
	return path, nil
}

func (r *Resolver) checkPubspec(packageDir string) error {
	path := r.fs.Join(packageDir, domain.PubspecFileName)
	if r.fs.FileExists(path) {
		return nil
	}

	abs := r.fs.Abs(path)
	return zerr.With(
		zerr.Wrap(domain.ErrPubspecMissing, fmt.Sprintf("no %s found at %s", domain.PubspecFileName, abs)),
		"path", abs,
	)
}

func (r *Resolver) info(msg string) {
	if r.logger != nil {
		r.logger.Info(msg)
	}
}
