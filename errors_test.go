package finder

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/gomac/finder/darwin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := &Error{Op: "resolve", Path: "/tmp/link.alias", Kind: NotAlias}

	assert.ErrorIs(t, err, ErrNotAlias)
	assert.ErrorIs(t, fmt.Errorf("listing: %w", err), ErrNotAlias)
	assert.NotErrorIs(t, err, ErrResolutionFailed)
	assert.NotErrorIs(t, err, &Error{Op: "resolve", Kind: NotAlias})
}

func TestErrorUnwrapsCause(t *testing.T) {
	err := &Error{Op: "resolve", Path: "/nonexistent/path", Kind: LookupFailed, Err: fs.ErrNotExist}

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Equal(t, LookupFailed, KindOf(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, Unknown, KindOf(errors.New("foreign")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"sentinel", ErrUnsupported, "not supported on this platform"},
		{"no path", &Error{Op: "check", Kind: InvalidInput, Err: errEmptyPath}, "check: invalid input - empty path"},
		{"path", &Error{Op: "resolve", Path: "/tmp/a", Kind: NotAlias}, `resolve "/tmp/a": not an alias`},
		{"cause", &Error{Op: "alias", Path: "/tmp/b", Kind: CreateFailed, Err: errors.New("disk full")}, `alias "/tmp/b": alias creation failed - disk full`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestHostKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid path", &darwin.HostError{Status: darwin.StatusInvalidPath}, InvalidInput},
		{"lookup", &darwin.HostError{Status: darwin.StatusLookupFailed}, LookupFailed},
		{"bookmark", &darwin.HostError{Status: darwin.StatusBookmarkFailed}, ResolutionFailed},
		{"resolve", &darwin.HostError{Status: darwin.StatusResolveFailed, Description: "The file doesn't exist."}, ResolutionFailed},
		{"encode", &darwin.HostError{Status: darwin.StatusEncodeFailed}, EncodingFailed},
		{"write", &darwin.HostError{Status: darwin.StatusWriteFailed}, CreateFailed},
		{"wrapped", fmt.Errorf("ctx: %w", &darwin.HostError{Status: darwin.StatusLookupFailed}), LookupFailed},
		{"not darwin", darwin.ErrNotDarwin, Unsupported},
		{"foreign", errors.New("boom"), Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hostKind(tt.err))
		})
	}
}

func TestValidPath(t *testing.T) {
	require.NoError(t, validPath("check", "/tmp/target.txt"))

	err := validPath("check", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, errEmptyPath)

	err = validPath("resolve", "/tmp/a\x00b")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, errNULInPath)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unknown error", Unknown.String())
	assert.Equal(t, "unknown error", Kind(99).String())
	assert.Equal(t, "too many links", TooManyLinks.String())
}
