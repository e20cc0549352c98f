package domain

const (
	// BazelProgram is the name looked up on the search path when no bazel executable is given.
	BazelProgram = "bazel"

	// PubProgram is the name looked up on the search path when no pub executable is given.
	PubProgram = "pub"

	// PubspecFileName is the name of the package manifest expected inside the package directory.
	PubspecFileName = "pubspec.yaml"
)
