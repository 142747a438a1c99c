package checks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// writeFile creates a file with the given content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "present.txt", "hello")

	evalTrue(t, "file", "exists", f)
	evalTrue(t, "file", "exists", dir)
	evalFalse(t, "file", "exists", filepath.Join(dir, "absent.txt"))
}

func TestFileDirectoryAndRegular(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "f.txt", "x")

	evalTrue(t, "file", "directory", dir)
	evalFalse(t, "file", "directory", f)

	evalTrue(t, "file", "regular", f)
	evalFalse(t, "file", "regular", dir)

	// Nonexistent path is a legitimate false for every type predicate.
	missing := filepath.Join(dir, "missing")
	evalFalse(t, "file", "directory", missing)
	evalFalse(t, "file", "regular", missing)
}

func TestFileSymlink(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.txt", "x")

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	evalTrue(t, "file", "symlink", link)
	evalFalse(t, "file", "symlink", target)

	// A dangling link is still a link: the check must not follow it.
	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), dangling))
	evalTrue(t, "file", "symlink", dangling)
	evalFalse(t, "file", "exists", dangling)
}

func TestFileNamedPipe(t *testing.T) {
	dir := t.TempDir()
	fifo := filepath.Join(dir, "pipe")
	require.NoError(t, unix.Mkfifo(fifo, 0o644))

	evalTrue(t, "file", "named-pipe", fifo)
	evalFalse(t, "file", "regular", fifo)
	evalFalse(t, "file", "named-pipe", dir)
}

func TestFileNonEmpty(t *testing.T) {
	dir := t.TempDir()
	full := writeFile(t, dir, "full.txt", "hello\n")
	empty := writeFile(t, dir, "empty.txt", "")

	evalTrue(t, "file", "non-empty", full)
	evalFalse(t, "file", "non-empty", empty)

	// Directories report a nonzero size but are not regular files.
	evalFalse(t, "file", "non-empty", dir)
	evalFalse(t, "file", "non-empty", filepath.Join(dir, "missing"))
}

func TestFileReadableWritable(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "rw.txt", "x")

	evalTrue(t, "file", "readable", f)
	evalTrue(t, "file", "writable", f)

	missing := filepath.Join(dir, "missing")
	evalFalse(t, "file", "readable", missing)
	evalFalse(t, "file", "writable", missing)
}

func TestFileExecutable(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "run.sh", "#!/bin/sh\necho hi\n")
	require.NoError(t, os.Chmod(script, 0o755))

	evalTrue(t, "file", "executable", script)
	evalFalse(t, "file", "executable", filepath.Join(dir, "missing"))
}

func TestFileSpecialBits(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "bits.txt", "x")

	evalFalse(t, "file", "has-suid", f)
	evalFalse(t, "file", "has-sgid", f)
	evalFalse(t, "file", "has-sticky", f)

	require.NoError(t, os.Chmod(f, 0o644|os.ModeSetuid))
	evalTrue(t, "file", "has-suid", f)

	require.NoError(t, os.Chmod(f, 0o644|os.ModeSticky))
	evalTrue(t, "file", "has-sticky", f)
	evalFalse(t, "file", "has-suid", f)
}

func TestFileOwnership(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "own.txt", "x")

	// Files we just created belong to the effective user and group.
	evalTrue(t, "file", "owned-by-effective-user", f)
	evalTrue(t, "file", "owned-by-effective-group", f)
	evalFalse(t, "file", "owned-by-effective-user", filepath.Join(dir, "missing"))
}

func TestFileSameInode(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "orig.txt", "x")
	other := writeFile(t, dir, "other.txt", "x")

	hard := filepath.Join(dir, "hard.txt")
	require.NoError(t, os.Link(f, hard))

	evalTrue(t, "file", "has-same-inode", f, hard)
	evalTrue(t, "file", "has-same-inode", f, f)
	evalFalse(t, "file", "has-same-inode", f, other)
	evalFalse(t, "file", "has-same-inode", f, filepath.Join(dir, "missing"))
}

func TestFileNewerOlder(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "x")
	recent := writeFile(t, dir, "recent.txt", "x")

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	evalTrue(t, "file", "newer-than", recent, old)
	evalFalse(t, "file", "newer-than", old, recent)

	evalTrue(t, "file", "older-than", old, recent)
	evalFalse(t, "file", "older-than", recent, old)

	evalFalse(t, "file", "newer-than", recent, filepath.Join(dir, "missing"))
}

func TestFileGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", "content")
	writeFile(t, dir, "b.log", "")
	writeFile(t, dir, "c.txt", "")

	evalTrue(t, "file", "exists-glob", filepath.Join(dir, "*.log"))
	evalFalse(t, "file", "exists-glob", filepath.Join(dir, "*.json"))

	evalTrue(t, "file", "non-empty-glob", filepath.Join(dir, "*.log"))
	evalFalse(t, "file", "non-empty-glob", filepath.Join(dir, "*.txt"))

	// Doublestar patterns reach into subdirectories.
	sub := filepath.Join(dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, sub, "d.log", "x")
	evalTrue(t, "file", "exists-glob", filepath.Join(dir, "**", "*.log"))
}

func TestFileGlobBadPattern(t *testing.T) {
	_, err := eval(t, "file", "exists-glob", "[unclosed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid pattern")
}

func TestFileSizeComparisons(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "five.txt", "12345")

	evalTrue(t, "file", "size-eq", f, "5")
	evalTrue(t, "file", "size-gt", f, "4")
	evalTrue(t, "file", "size-ge", f, "5")
	evalTrue(t, "file", "size-lt", f, "6")
	evalTrue(t, "file", "size-le", f, "5")

	evalFalse(t, "file", "size-gt", f, "5")
	evalFalse(t, "file", "size-eq", f, "4")
	evalFalse(t, "file", "size-eq", filepath.Join(dir, "missing"), "0")
}

func TestFileMtimeAge(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "aged.txt", "x")

	past := time.Now().Add(-10 * time.Minute)
	require.NoError(t, os.Chtimes(f, past, past))

	evalTrue(t, "file", "mtime-older-than", f, "60")
	evalFalse(t, "file", "mtime-newer-than", f, "60")

	fresh := writeFile(t, dir, "fresh.txt", "x")
	evalTrue(t, "file", "mtime-newer-than", fresh, "60")
	evalFalse(t, "file", "mtime-older-than", fresh, "60")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, "notes.txt"), expandPath("~/notes.txt"))
	require.Equal(t, "/tmp/plain", expandPath("/tmp/plain"))
	require.Equal(t, "relative", expandPath("relative"))
}
