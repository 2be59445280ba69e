//go:build !darwin

package darwin

/*
	No op implementations of the host bound features so the package can be
	compiled on other machines and godoc can work fine.
*/

// ReadFinderInfo returns the Finder information attached to path.
func ReadFinderInfo(path string) (FileInfo, error) { return FileInfo{}, ErrNotDarwin }

// HasAliasFlag reports if the Finder flags of path mark it as an alias.
func HasAliasFlag(path string) (bool, error) { return false, ErrNotDarwin }

// SetAsAlias flags the destination file as an alias.
func SetAsAlias(path string, folder bool) error { return ErrNotDarwin }

// IsAliasFile asks the host if path is an alias file.
func IsAliasFile(path string) (bool, error) { return false, ErrNotDarwin }

// ResolveAliasFile reads and resolves the bookmark stored in the alias file at path.
func ResolveAliasFile(path string, options uint) (string, bool, error) {
	return "", false, ErrNotDarwin
}

// WriteAliasFile creates bookmark data for target and writes it to dst.
func WriteAliasFile(target string, targetIsDir bool, dst string, options uint) error {
	return ErrNotDarwin
}
