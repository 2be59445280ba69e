package finder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomac/finder/darwin"
)

/*
	Finder users can create virtual links to files using 3 ways: symlinks,
	hard links and aliases. Symlinks point to a specific path, hard links to
	a specific file, and aliases store a bookmark which lets the OS find the
	target again after it was moved or renamed.

	The bookmark is undocumented and versioned by Apple, all the work is
	delegated to CoreFoundation:
	https://developer.apple.com/documentation/corefoundation/cfurl

	kCFURLIsAliasFileKey is also true for symlinks, which is why the file is
	lstat'ed before asking the host.
*/

type hostResolver struct{}

var host = hostResolver{}

// Supported reports if aliases can be detected and resolved on this platform.
func Supported() bool { return true }

func (hostResolver) Check(path string) (bool, error) {
	const op = "check"
	if err := validPath(op, path); err != nil {
		return false, err
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return false, &Error{Op: op, Path: path, Kind: LookupFailed, Err: err}
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return false, nil
	}

	isAlias, err := darwin.IsAliasFile(path)
	if err != nil {
		log.Printf("failed to read the alias property of %s - %s", path, err)
		return false, &Error{Op: op, Path: path, Kind: hostKind(err), Err: err}
	}
	return isAlias, nil
}

func (r hostResolver) IsAlias(path string) bool {
	isAlias, _ := r.Check(path)
	return isAlias
}

func (r hostResolver) Resolve(path string) (*Resolution, error) {
	const op = "resolve"
	if err := validPath(op, path); err != nil {
		return nil, err
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, &Error{Op: op, Path: path, Kind: LookupFailed, Err: err}
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, &Error{Op: op, Path: path, Kind: NotAlias}
	}

	target, stale, err := darwin.ResolveAliasFile(path, darwin.BookmarkResolutionWithoutUI)
	if err != nil {
		kind := hostKind(err)
		if kind == ResolutionFailed {
			// bookmark data is missing from regular files
			if isAlias, cerr := r.Check(path); cerr == nil && !isAlias {
				return nil, &Error{Op: op, Path: path, Kind: NotAlias}
			}
		}
		log.Printf("failed to resolve the alias %s - %s", path, err)
		return nil, &Error{Op: op, Path: path, Kind: kind, Err: err}
	}
	if stale {
		log.Printf("alias %s resolved to %s but its bookmark is stale", path, target)
	}
	return &Resolution{Path: target, Stale: stale}, nil
}

func (r hostResolver) Alias(src, dst string) error {
	const op = "alias"
	if err := validPath(op, src); err != nil {
		return err
	}
	if err := validPath(op, dst); err != nil {
		return err
	}
	srcPath, err := filepath.Abs(src)
	if err != nil {
		return &Error{Op: op, Path: src, Kind: InvalidInput, Err: err}
	}
	srcPath = filepath.Clean(srcPath)
	dstPath, err := filepath.Abs(dst)
	if err != nil {
		return &Error{Op: op, Path: dst, Kind: InvalidInput, Err: err}
	}
	dstPath = filepath.Clean(dstPath)

	st, err := os.Stat(srcPath)
	if err != nil {
		return &Error{Op: op, Path: src, Kind: LookupFailed, Err: err}
	}
	// TODO: resolve the source alias and point to its target instead of
	// failing, like the Finder does.
	if r.IsAlias(srcPath) {
		return &Error{Op: op, Path: src, Kind: InvalidInput, Err: errAliasToAlias}
	}

	if err := darwin.WriteAliasFile(srcPath, st.IsDir(), dstPath, darwin.BookmarkCreationSuitableForBookmarkFile); err != nil {
		return &Error{Op: op, Path: dst, Kind: CreateFailed, Err: err}
	}

	// the host normally flags the file itself, older systems didn't
	flagged, err := darwin.HasAliasFlag(dstPath)
	if err == nil && !flagged {
		log.Printf("setting the alias finder flag on %s", dstPath)
		err = darwin.SetAsAlias(dstPath, st.IsDir())
	}
	if err != nil {
		return &Error{Op: op, Path: dst, Kind: CreateFailed, Err: fmt.Errorf("failed to flag the file as an alias: %w", err)}
	}
	return nil
}
