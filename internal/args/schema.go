// Package args declares the command line schema of bazelify and parses it
// into a resolution request.
package args

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/bazelify/internal/core/domain"
	"go.trai.ch/zerr"
)

// Schema names the flags that make up a resolution request.
// It holds no parse state; every parse binds it to a fresh flag set.
type Schema struct {
	BazelFlag    string
	PubFlag      string
	PackageFlag  string
	PackageShort string
	CommandName  string
	bazelUsage   string
	pubUsage     string
	packageUsage string
}

// DefaultSchema returns the schema used by the bazelify command line.
func DefaultSchema() Schema {
	return Schema{
		BazelFlag:    "bazel",
		PubFlag:      "pub",
		PackageFlag:  "package",
		PackageShort: "p",
		CommandName:  "bazelify resolve",
		bazelUsage:   "Path to the bazel executable. Defaults to looking up \"bazel\" on PATH",
		pubUsage:     "Path to the pub executable. Defaults to looking up \"pub\" on PATH",
		packageUsage: "Directory containing the pubspec.yaml of the package (required)",
	}
}

// Bind registers the schema's flags on fs.
func (s Schema) Bind(fs *pflag.FlagSet) {
	fs.String(s.BazelFlag, "", s.bazelUsage)
	fs.String(s.PubFlag, "", s.pubUsage)
	fs.StringP(s.PackageFlag, s.PackageShort, "", s.packageUsage)
}

// Request builds a ResolutionRequest from a flag set that Bind was applied to and that has been parsed.
func (s Schema) Request(fs *pflag.FlagSet) (domain.ResolutionRequest, error) {
	if !fs.Changed(s.PackageFlag) {
		return domain.ResolutionRequest{}, zerr.With(
			zerr.Wrap(domain.ErrArgumentInvalid, "missing required option --"+s.PackageFlag),
			"flag", s.PackageFlag,
		)
	}

	packageDir, err := fs.GetString(s.PackageFlag)
	if err != nil {
		return domain.ResolutionRequest{}, zerr.With(zerr.Wrap(domain.ErrArgumentInvalid, err.Error()), "flag", s.PackageFlag)
	}
	if strings.TrimSpace(packageDir) == "" {
		return domain.ResolutionRequest{}, zerr.With(
			zerr.Wrap(domain.ErrArgumentInvalid, "option --"+s.PackageFlag+" must not be empty"),
			"flag", s.PackageFlag,
		)
	}

	bazel, err := s.source(fs, s.BazelFlag)
	if err != nil {
		return domain.ResolutionRequest{}, err
	}
	pub, err := s.source(fs, s.PubFlag)
	if err != nil {
		return domain.ResolutionRequest{}, err
	}

	return domain.NewResolutionRequest(bazel, pub, packageDir), nil
}

// source maps an unset flag to a search path lookup and a set one to an explicit path.
func (s Schema) source(fs *pflag.FlagSet, name string) (domain.ExecutableSource, error) {
	if !fs.Changed(name) {
		return domain.FromSearchPath(), nil
	}
	value, err := fs.GetString(name)
	if err != nil {
		return domain.ExecutableSource{}, zerr.With(zerr.Wrap(domain.ErrArgumentInvalid, err.Error()), "flag", name)
	}
	return domain.ExplicitPath(value), nil
}

// FlagSet returns a new flag set with the schema bound to it.
func (s Schema) FlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(s.CommandName, pflag.ContinueOnError)
	fs.SortFlags = false
	s.Bind(fs)
	return fs
}

// Parse parses argv against schema.
func Parse(schema Schema, argv []string) (domain.ResolutionRequest, error) {
	fs := schema.FlagSet()
	// Parse errors are returned, not printed.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	if err := fs.Parse(argv); err != nil {
		return domain.ResolutionRequest{}, zerr.Wrap(domain.ErrArgumentInvalid, err.Error())
	}
	if fs.NArg() > 0 {
		return domain.ResolutionRequest{}, zerr.With(
			zerr.Wrap(domain.ErrArgumentInvalid, "unexpected arguments: "+strings.Join(fs.Args(), " ")),
			"args", fs.Args(),
		)
	}

	return schema.Request(fs)
}

// Usage renders the help text for schema.
func Usage(schema Schema) string {
	var b strings.Builder
	b.WriteString("Usage: " + schema.CommandName + " [options]\n\nOptions:\n")
	b.WriteString(schema.FlagSet().FlagUsages())
	return b.String()
}
