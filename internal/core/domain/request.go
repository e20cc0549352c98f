package domain

// ResolutionRequest is the parsed command line input to resolution.
// It is immutable once constructed.
type ResolutionRequest struct {
	bazel      ExecutableSource
	pub        ExecutableSource
	packageDir string
}

// NewResolutionRequest creates a new ResolutionRequest.
func NewResolutionRequest(bazel, pub ExecutableSource, packageDir string) ResolutionRequest {
	return ResolutionRequest{
		bazel:      bazel,
		pub:        pub,
		packageDir: packageDir,
	}
}

// Bazel returns the source of the bazel executable.
func (r ResolutionRequest) Bazel() ExecutableSource {
	return r.bazel
}

// Pub returns the source of the pub executable.
func (r ResolutionRequest) Pub() ExecutableSource {
	return r.pub
}

// PackageDir returns the package directory as given on the command line.
func (r ResolutionRequest) PackageDir() string {
	return r.packageDir
}

// ResolvedConfig is the outcome of a successful resolution. Both executables
// named existing files and the package directory contained a pubspec.yaml at
// the time it was produced.
type ResolvedConfig struct {
	bazelExecutable string
	pubExecutable   string
	packageDir      string
}

// NewResolvedConfig creates a new ResolvedConfig. Values are stored as given.
func NewResolvedConfig(bazelExecutable, pubExecutable, packageDir string) ResolvedConfig {
	return ResolvedConfig{
		bazelExecutable: bazelExecutable,
		pubExecutable:   pubExecutable,
		packageDir:      packageDir,
	}
}

// BazelExecutable returns the path of the bazel executable.
func (c ResolvedConfig) BazelExecutable() string {
	return c.bazelExecutable
}

// PubExecutable returns the path of the pub executable.
func (c ResolvedConfig) PubExecutable() string {
	return c.pubExecutable
}

// PackageDir returns the package directory, unchanged from the request.
func (c ResolvedConfig) PackageDir() string {
	return c.packageDir
}

// MarshalYAML implements yaml.Marshaler.
func (c ResolvedConfig) MarshalYAML() (any, error) {
	return struct {
		Bazel   string `yaml:"bazel"`
		Pub     string `yaml:"pub"`
		Package string `yaml:"package"`
	}{
		Bazel:   c.bazelExecutable,
		Pub:     c.pubExecutable,
		Package: c.packageDir,
	}, nil
}
