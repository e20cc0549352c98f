package ports

import "go.trai.ch/bazelify/internal/core/domain"

// ManifestReader reads a package manifest.
//
//go:generate mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// ReadManifest parses the pubspec.yaml at path.
	ReadManifest(path string) (domain.Manifest, error)
}
