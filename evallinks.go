package finder

import "path/filepath"

// MaxHops is the default number of aliases Evallinks follows before giving
// up, the same limit darwin applies to symlinks (MAXSYMLINKS).
const MaxHops = 32

// Evallinks returns the path name after the evaluation of any aliases and
// symbolic links, in any combination.
func Evallinks(path string) (string, error) {
	return EvallinksWith(host, path, MaxHops)
}

// EvallinksWith is Evallinks using r to detect and resolve aliases.
// A maxHops <= 0 means MaxHops.
func EvallinksWith(r Resolver, path string, maxHops int) (string, error) {
	const op = "evallinks"
	if err := validPath(op, path); err != nil {
		return "", err
	}
	if maxHops <= 0 {
		maxHops = MaxHops
	}

	current := path
	for hops := 0; ; hops++ {
		resolved, err := filepath.EvalSymlinks(current)
		if err != nil {
			return "", &Error{Op: op, Path: path, Kind: LookupFailed, Err: err}
		}
		if !r.IsAlias(resolved) {
			return resolved, nil
		}
		if hops == maxHops {
			return "", &Error{Op: op, Path: path, Kind: TooManyLinks}
		}
		res, err := r.Resolve(resolved)
		if err != nil {
			return "", err
		}
		log.Printf("%s is an alias of %s", resolved, res.Path)
		current = res.Path
	}
}
