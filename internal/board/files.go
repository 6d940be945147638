package board

// ExistingFiles tracks the set of filenames last reported present on the
// board's filesystem. It is trustworthy only between a successful listing
// and the next mutating operation: a reflash erases the filesystem, so
// Reset must be called whenever one happens.
type ExistingFiles struct {
	names map[string]struct{}
}

// NewExistingFiles returns an empty tracker.
func NewExistingFiles() *ExistingFiles {
	return &ExistingFiles{names: make(map[string]struct{})}
}

// Replace installs a fresh listing, discarding the previous one.
func (e *ExistingFiles) Replace(names []string) {
	e.names = make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		e.names[n] = struct{}{}
	}
}

// Present reports whether a file with the given name was in the last
// listing.
func (e *ExistingFiles) Present(name string) bool {
	_, ok := e.names[name]
	return ok
}

// Reset clears the tracker. Called after any reflash so stale "already
// present" assumptions never suppress a required write.
func (e *ExistingFiles) Reset() {
	e.names = make(map[string]struct{})
}

// Len returns the number of tracked filenames.
func (e *ExistingFiles) Len() int {
	return len(e.names)
}
