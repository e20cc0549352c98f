package domain

import "go.trai.ch/zerr"

var (
	// ErrArgumentInvalid is returned when the command line cannot be turned into a resolution request,
	// most notably when the required package directory was not supplied.
	ErrArgumentInvalid = zerr.New("invalid arguments")

	// ErrExecutableNotFound is returned when an explicitly given executable path does not name an existing file.
	ErrExecutableNotFound = zerr.New("executable not found")

	// ErrExecutableUnresolvable is returned when no executable path was given and the program
	// could not be located on the search path.
	ErrExecutableUnresolvable = zerr.New("could not locate executable on PATH")

	// ErrPubspecMissing is returned when the package directory does not contain a pubspec.yaml file.
	ErrPubspecMissing = zerr.New("pubspec.yaml not found")

	// ErrManifestReadFailed is returned when the package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")
)
