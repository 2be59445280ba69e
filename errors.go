package finder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gomac/finder/darwin"
)

// Kind classifies why an operation produced no result.
type Kind int

const (
	Unknown Kind = iota
	// the path is empty or can't be represented by the host
	InvalidInput
	// the file or one of its properties could not be read
	LookupFailed
	// the file exists but is not an alias
	NotAlias
	// the alias bookmark could not be read or resolved
	ResolutionFailed
	// the resolved target has no file system path
	EncodingFailed
	// aliases don't exist on this platform
	Unsupported
	// too many aliases or symlinks were followed
	TooManyLinks
	// the alias file could not be written
	CreateFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case LookupFailed:
		return "lookup failed"
	case NotAlias:
		return "not an alias"
	case ResolutionFailed:
		return "resolution failed"
	case EncodingFailed:
		return "path encoding failed"
	case Unsupported:
		return "not supported on this platform"
	case TooManyLinks:
		return "too many links"
	case CreateFailed:
		return "alias creation failed"
	}
	return "unknown error"
}

// Error records a failed operation, the path it was called with and the
// underlying cause when there is one.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		if e.Path != "" {
			fmt.Fprintf(&b, " %q", e.Path)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(" - ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the bare kind sentinels (ErrNotAlias, ...) so callers can use
// errors.Is(err, finder.ErrNotAlias).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// Error kinds, comparable with errors.Is.
var (
	ErrInvalidInput     = &Error{Kind: InvalidInput}
	ErrLookupFailed     = &Error{Kind: LookupFailed}
	ErrNotAlias         = &Error{Kind: NotAlias}
	ErrResolutionFailed = &Error{Kind: ResolutionFailed}
	ErrEncodingFailed   = &Error{Kind: EncodingFailed}
	ErrUnsupported      = &Error{Kind: Unsupported}
	ErrTooManyLinks     = &Error{Kind: TooManyLinks}
	ErrCreateFailed     = &Error{Kind: CreateFailed}
)

var (
	errEmptyPath    = errors.New("empty path")
	errNULInPath    = errors.New("path contains a NUL byte")
	errAliasToAlias = errors.New("can't safely alias to an alias, choose another source")
)

// KindOf returns the kind of err, or Unknown if err doesn't come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func validPath(op, path string) error {
	if path == "" {
		return &Error{Op: op, Kind: InvalidInput, Err: errEmptyPath}
	}
	if strings.IndexByte(path, 0) >= 0 {
		return &Error{Op: op, Path: path, Kind: InvalidInput, Err: errNULInPath}
	}
	return nil
}

// hostKind maps a failed host call onto a Kind.
func hostKind(err error) Kind {
	var he *darwin.HostError
	if !errors.As(err, &he) {
		if errors.Is(err, darwin.ErrNotDarwin) {
			return Unsupported
		}
		return Unknown
	}
	switch he.Status {
	case darwin.StatusInvalidPath:
		return InvalidInput
	case darwin.StatusLookupFailed:
		return LookupFailed
	case darwin.StatusBookmarkFailed, darwin.StatusResolveFailed:
		return ResolutionFailed
	case darwin.StatusEncodeFailed:
		return EncodingFailed
	case darwin.StatusWriteFailed:
		return CreateFailed
	}
	return Unknown
}
