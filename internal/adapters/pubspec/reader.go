// Package pubspec reads Dart package manifests.
package pubspec

import (
	"fmt"
	"os"
	"sort"

	"go.trai.ch/bazelify/internal/core/domain"
	"go.trai.ch/bazelify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader for pubspec.yaml files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadManifest reads and parses the pubspec.yaml at path.
func (r *Reader) ReadManifest(path string) (domain.Manifest, error) {
	// #nosec G304 -- path is the validated manifest location
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	return Parse(data, path)
}

// Parse decodes manifest bytes. The source is only used in error metadata.
func Parse(data []byte, source string) (domain.Manifest, error) {
	var spec Pubspec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, err.Error()), "path", source)
	}

	if spec.Name == "" {
		return domain.Manifest{}, zerr.With(
			zerr.Wrap(domain.ErrManifestParseFailed, "manifest has no package name"),
			"path", source,
		)
	}

	return domain.Manifest{
		Name:            spec.Name,
		Version:         spec.Version,
		Description:     spec.Description,
		SDKConstraint:   stringValue(spec.Environment["sdk"]),
		Dependencies:    sortedKeys(spec.Dependencies),
		DevDependencies: sortedKeys(spec.DevDependencies),
	}, nil
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
