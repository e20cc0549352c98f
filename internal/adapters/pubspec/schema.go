package pubspec

// Pubspec is the on-disk shape of a pubspec.yaml file.
// Only the fields bazelify reports on are decoded.
type Pubspec struct {
	Name            string         `yaml:"name"`
	Version         string         `yaml:"version"`
	Description     string         `yaml:"description"`
	Environment     map[string]any `yaml:"environment"`
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
}
