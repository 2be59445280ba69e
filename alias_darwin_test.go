package finder

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gomac/finder/darwin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAlias creates target.txt and an alias to it named link.alias.
func newAlias(t *testing.T) (dir, target, link string) {
	t.Helper()
	dir = tempDir(t)
	target = touch(t, filepath.Join(dir, "target.txt"))
	link = filepath.Join(dir, "link.alias")
	require.NoError(t, Alias(target, link))
	return dir, target, link
}

func TestAliasRoundTrip(t *testing.T) {
	_, target, link := newAlias(t)

	assert.True(t, Supported())
	assert.True(t, IsAlias(link))
	assert.False(t, IsAlias(target))

	flagged, err := darwin.HasAliasFlag(link)
	require.NoError(t, err)
	assert.True(t, flagged)

	got, err := ResolveAlias(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	// resolving doesn't change anything
	again, err := Resolve(link)
	require.NoError(t, err)
	assert.Equal(t, target, again.Path)
	assert.False(t, again.Stale)
}

func TestAliasToDirectory(t *testing.T) {
	dir := tempDir(t)
	folder := filepath.Join(dir, "folder")
	require.NoError(t, os.Mkdir(folder, 0o755))
	link := filepath.Join(dir, "folder alias")
	require.NoError(t, Alias(folder, link))

	assert.True(t, IsAlias(link))
	got, err := ResolveAlias(link)
	require.NoError(t, err)
	assert.Equal(t, folder, filepath.Clean(got))
}

func TestAliasRefusesAliasSource(t *testing.T) {
	dir, _, link := newAlias(t)

	err := Alias(link, filepath.Join(dir, "second.alias"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, errAliasToAlias)
	assert.NoFileExists(t, filepath.Join(dir, "second.alias"))
}

func TestAliasMissingSource(t *testing.T) {
	dir := tempDir(t)
	err := Alias(filepath.Join(dir, "nope"), filepath.Join(dir, "link.alias"))
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIsAliasEdgeCases(t *testing.T) {
	dir, target, link := newAlias(t)
	symlink := filepath.Join(dir, "symlink")
	require.NoError(t, os.Symlink(target, symlink))
	symToAlias := filepath.Join(dir, "symlink-to-alias")
	require.NoError(t, os.Symlink(link, symToAlias))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"empty", "", false},
		{"nul", "/tmp/a\x00b", false},
		{"nonexistent", "/nonexistent/path", false},
		{"regular file", target, false},
		{"directory", dir, false},
		{"symlink", symlink, false},
		{"symlink to alias", symToAlias, false},
		{"alias", link, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAlias(tt.path))
		})
	}
}

func TestCheckReportsCause(t *testing.T) {
	_, target, _ := newAlias(t)

	isAlias, err := Check(target)
	require.NoError(t, err)
	assert.False(t, isAlias)

	_, err = Check("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Check("/nonexistent/path")
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestResolveFailures(t *testing.T) {
	dir, target, _ := newAlias(t)
	symlink := filepath.Join(dir, "symlink")
	require.NoError(t, os.Symlink(target, symlink))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty", "", ErrInvalidInput},
		{"nul", "/tmp/a\x00b", ErrInvalidInput},
		{"nonexistent", "/nonexistent/path", ErrLookupFailed},
		{"regular file", target, ErrNotAlias},
		{"symlink", symlink, ErrNotAlias},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.path)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)

			got, err := ResolveAlias(tt.path)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// The host decides what a deleted target means: either the bookmark can't be
// resolved anymore, or the recorded location is returned and flagged stale.
func TestResolveDeletedTarget(t *testing.T) {
	_, target, link := newAlias(t)
	require.NoError(t, os.Remove(target))

	assert.True(t, IsAlias(link))
	res, err := Resolve(link)
	if err != nil {
		assert.ErrorIs(t, err, ErrResolutionFailed)
		assert.Nil(t, res)
		return
	}
	assert.Equal(t, target, res.Path)
}

func TestResolveMovedTarget(t *testing.T) {
	dir, target, link := newAlias(t)
	moved := filepath.Join(dir, "moved.txt")
	require.NoError(t, os.Rename(target, moved))

	res, err := Resolve(link)
	if err != nil {
		// volumes without persistent file IDs can't track the move
		assert.ErrorIs(t, err, ErrResolutionFailed)
		return
	}
	assert.Equal(t, moved, res.Path)
}

func TestEvallinksRealAlias(t *testing.T) {
	dir, target, link := newAlias(t)
	symlink := filepath.Join(dir, "symlink")
	require.NoError(t, os.Symlink(link, symlink))

	got, err := Evallinks(symlink)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestConcurrentResolution(t *testing.T) {
	_, target, link := newAlias(t)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if IsAlias(link) {
				results[i], _ = ResolveAlias(link)
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, target, got)
	}
}
