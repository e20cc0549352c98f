package ports

// PathLookup locates programs on the system search path.
//
//go:generate mockgen -source=path_lookup.go -destination=mocks/mock_path_lookup.go -package=mocks
type PathLookup interface {
	// LookPath returns the location of the named program.
	// It returns an error if the program cannot be located.
	LookPath(name string) (string, error)
}
