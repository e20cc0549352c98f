// Package domain contains the core types of bazelify.
package domain

// ExecutableSource describes where an executable comes from: an explicit path
// given by the user, or a lookup of the program name on the search path.
//
// The zero value is a search path source.
type ExecutableSource struct {
	path     string
	explicit bool
}

// ExplicitPath returns a source pinned to the given path.
func ExplicitPath(path string) ExecutableSource {
	return ExecutableSource{path: path, explicit: true}
}

// FromSearchPath returns a source that is resolved by looking the program up on the search path.
func FromSearchPath() ExecutableSource {
	return ExecutableSource{}
}

// IsExplicit reports whether the source carries a user supplied path.
func (s ExecutableSource) IsExplicit() bool {
	return s.explicit
}

// Path returns the explicit path and true, or an empty string and false for search path sources.
func (s ExecutableSource) Path() (string, bool) {
	return s.path, s.explicit
}

// String implements fmt.Stringer.
func (s ExecutableSource) String() string {
	if s.explicit {
		return s.path
	}
	return "<search path>"
}
