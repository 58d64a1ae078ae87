package io

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/sjmulder/linkmove/internal/filesystem"
	"github.com/sjmulder/linkmove/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// crossDeviceOS is a real [schema.OS] whose renames always fail as if source
// and destination were on different devices.
type crossDeviceOS struct {
	schema.OS
}

func (*crossDeviceOS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unix.EXDEV}
}

// unprivilegedUnix is a real [schema.Unix] that is not permitted to change
// ownership or timestamps.
type unprivilegedUnix struct {
	schema.Unix
}

func (*unprivilegedUnix) Chown(string, int, int) error {
	return unix.EPERM
}

func (*unprivilegedUnix) Lchown(string, int, int) error {
	return unix.EPERM
}

func (*unprivilegedUnix) UtimesNano(string, []unix.Timespec) error {
	return unix.EPERM
}

// failingChmodUnix is a real [schema.Unix] whose chmod always fails.
type failingChmodUnix struct {
	schema.Unix
}

func (*failingChmodUnix) Chmod(string, uint32) error {
	return unix.EROFS
}

func newTestHandler(osH osProvider, unixH unixProvider, opts Options) *Handler {
	fsHandler := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})

	if opts.Out == nil {
		opts.Out = &bytes.Buffer{}
	}

	return NewHandler(fsHandler, osH, unixH, opts)
}

type treeEntry struct {
	perms   fs.FileMode
	content string
	link    string
	isDir   bool
}

// writeTree creates the given entries below root, with the exact
// permissions applied after all entries were created.
func writeTree(t *testing.T, root string, entries map[string]treeEntry) {
	t.Helper()

	require.NoError(t, os.MkdirAll(root, 0o700))

	for _, rel := range sortedKeys(entries) {
		e := entries[rel]
		path := filepath.Join(root, rel)

		switch {
		case e.isDir:
			require.NoError(t, os.MkdirAll(path, 0o700))
		case e.link != "":
			require.NoError(t, os.Symlink(e.link, path))
		default:
			require.NoError(t, os.WriteFile(path, []byte(e.content), 0o600))
		}
	}

	keys := sortedKeys(entries)
	for idx := len(keys) - 1; idx >= 0; idx-- {
		e := entries[keys[idx]]
		if e.link == "" {
			require.NoError(t, os.Chmod(filepath.Join(root, keys[idx]), e.perms))
		}
	}
}

// assertTree asserts that the entries below root match the given entries,
// with no other entries present.
func assertTree(t *testing.T, root string, entries map[string]treeEntry) {
	t.Helper()

	found := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)

		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)

		if rel != "." {
			found[rel] = struct{}{}
		}

		return nil
	})
	require.NoError(t, err)

	for rel, e := range entries {
		_, ok := found[rel]
		require.True(t, ok, "missing entry: %s", rel)

		path := filepath.Join(root, rel)

		info, err := os.Lstat(path)
		require.NoError(t, err)

		switch {
		case e.isDir:
			assert.True(t, info.IsDir(), "not a directory: %s", rel)
			assert.Equal(t, e.perms, info.Mode().Perm(), "perms of: %s", rel)
		case e.link != "":
			require.Equal(t, fs.ModeSymlink, info.Mode()&fs.ModeSymlink, "not a symlink: %s", rel)
			target, err := os.Readlink(path)
			require.NoError(t, err)
			assert.Equal(t, e.link, target, "link target of: %s", rel)
		default:
			assert.True(t, info.Mode().IsRegular(), "not a file: %s", rel)
			assert.Equal(t, e.perms, info.Mode().Perm(), "perms of: %s", rel)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, e.content, string(data), "content of: %s", rel)
		}
	}

	assert.Len(t, found, len(entries))
}

func sortedKeys(entries map[string]treeEntry) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}

	// Parents sort before their children.
	slices.Sort(keys)

	return keys
}
