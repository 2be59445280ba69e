// Package finder detects and resolves macOS Finder aliases.
//
// Aliases behave like symbolic links but store bookmark data instead of a
// path, so they keep pointing to their target after it was moved or renamed.
// The bookmark format is owned by the OS: this package never parses it and
// hands it to CoreFoundation instead. On other platforms nothing is an alias
// and resolution reports ErrUnsupported.
package finder

// Resolution is the result of a successful alias resolution.
type Resolution struct {
	// Path is the absolute path of the alias target.
	Path string
	// Stale is set when the location recorded in the bookmark no longer
	// matches the live location of the target. The host still found the
	// target, Path is where it lives now.
	Stale bool
}

// Resolver detects and resolves aliases. Host returns the implementation
// backed by the running OS.
type Resolver interface {
	// IsAlias reports if path is an alias. Any failure reports false.
	IsAlias(path string) bool
	// Resolve returns the target of the alias at path.
	Resolve(path string) (*Resolution, error)
}

// Host returns the Resolver of the running platform.
func Host() Resolver { return host }

// IsAlias returns positively if the passed file path is an alias.
// Symbolic links, missing files and unreadable files are not aliases.
func IsAlias(path string) bool { return host.IsAlias(path) }

// Check is IsAlias but reports why the answer couldn't be determined.
func Check(path string) (bool, error) { return host.Check(path) }

// Resolve returns the target of the alias at path.
func Resolve(path string) (*Resolution, error) { return host.Resolve(path) }

// ResolveAlias returns the absolute path of the target of the alias at path.
func ResolveAlias(path string) (string, error) {
	r, err := host.Resolve(path)
	if err != nil {
		return "", err
	}
	return r.Path, nil
}

// Alias acts like os.Symlink but instead of creating a symlink, an alias
// file holding a bookmark to src is created at dst.
func Alias(src, dst string) error { return host.Alias(src, dst) }
