//go:build !darwin

package finder

import "github.com/gomac/finder/darwin"

/*
	Aliases only exist on darwin. Everything validates its input the same way
	and then reports that nothing is an alias.
*/

type hostResolver struct{}

var host = hostResolver{}

// Supported reports if aliases can be detected and resolved on this platform.
func Supported() bool { return false }

func (hostResolver) Check(path string) (bool, error) {
	if err := validPath("check", path); err != nil {
		return false, err
	}
	return false, &Error{Op: "check", Path: path, Kind: Unsupported, Err: darwin.ErrNotDarwin}
}

func (hostResolver) IsAlias(path string) bool { return false }

func (hostResolver) Resolve(path string) (*Resolution, error) {
	if err := validPath("resolve", path); err != nil {
		return nil, err
	}
	return nil, &Error{Op: "resolve", Path: path, Kind: Unsupported, Err: darwin.ErrNotDarwin}
}

func (hostResolver) Alias(src, dst string) error {
	if err := validPath("alias", src); err != nil {
		return err
	}
	if err := validPath("alias", dst); err != nil {
		return err
	}
	return &Error{Op: "alias", Path: dst, Kind: Unsupported, Err: darwin.ErrNotDarwin}
}
