package domain

// Manifest holds the parts of a pubspec.yaml that bazelify reports on.
type Manifest struct {
	Name            string
	Version         string
	Description     string
	SDKConstraint   string
	Dependencies    []string
	DevDependencies []string
}
