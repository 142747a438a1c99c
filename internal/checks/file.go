package checks

import (
	"context"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	homedir "github.com/mitchellh/go-homedir"
	"golang.org/x/sys/unix"

	"github.com/roach88/is/internal/predicate"
)

// expandPath resolves a leading ~/ against the current user's home
// directory, mirroring the shell's tilde expansion for callers that quote
// their operands. Expansion failure leaves the path untouched; the
// subsequent stat simply fails and the predicate resolves false.
func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// statEval builds an evaluator that stats the path (following symlinks)
// and applies check to the result. A path that does not resolve is a
// legitimate false, never an error - including permission-denied along
// the way.
func statEval(check func(os.FileInfo) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		info, err := os.Stat(expandPath(ops[0].Path()))
		if err != nil {
			return false, nil
		}
		return check(info), nil
	}
}

// statPairEval builds an evaluator over two paths; false if either fails
// to resolve.
func statPairEval(check func(a, b os.FileInfo) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		a, err := os.Stat(expandPath(ops[0].Path()))
		if err != nil {
			return false, nil
		}
		b, err := os.Stat(expandPath(ops[1].Path()))
		if err != nil {
			return false, nil
		}
		return check(a, b), nil
	}
}

// accessEval checks a permission bit via access(2), which honors the
// effective UID/GID the way the shell's test -r/-w/-x does.
func accessEval(mode uint32) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		return unix.Access(expandPath(ops[0].Path()), mode) == nil, nil
	}
}

// sizeEval compares the resolved entry's size in bytes.
func sizeEval(cmp func(size, want int64) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		info, err := os.Stat(expandPath(ops[0].Path()))
		if err != nil {
			return false, nil
		}
		return cmp(info.Size(), ops[1].Int()), nil
	}
}

// mtimeEval compares the resolved entry's modification age in seconds.
func mtimeEval(cmp func(age time.Duration, want int64) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		info, err := os.Stat(expandPath(ops[0].Path()))
		if err != nil {
			return false, nil
		}
		return cmp(time.Since(info.ModTime()), ops[1].Int()), nil
	}
}

// globEval expands a doublestar pattern and applies match to every hit.
// A malformed pattern is a usage error; a pattern with no matches is false.
func globEval(match func(path string) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		pattern := expandPath(ops[0].Path())
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return false, predicate.NewBadPattern(ops[0].Path(), err)
		}
		for _, m := range matches {
			if match(m) {
				return true, nil
			}
		}
		return false, nil
	}
}

// sameInode reports whether two paths resolve to the same device and
// inode, the -ef test.
func sameInode(_ context.Context, ops []predicate.Operand) (bool, error) {
	var a, b unix.Stat_t
	if err := unix.Stat(expandPath(ops[0].Path()), &a); err != nil {
		return false, nil
	}
	if err := unix.Stat(expandPath(ops[1].Path()), &b); err != nil {
		return false, nil
	}
	return a.Dev == b.Dev && a.Ino == b.Ino, nil
}

// ownedByEval compares the resolved entry's owner against an effective ID.
func ownedByEval(ownerID func(st *unix.Stat_t) uint32, effectiveID func() int) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		var st unix.Stat_t
		if err := unix.Stat(expandPath(ops[0].Path()), &st); err != nil {
			return false, nil
		}
		return ownerID(&st) == uint32(effectiveID()), nil
	}
}

func registerFile(r *predicate.Registry) error {
	path := []predicate.Kind{predicate.KindPath}
	pathPair := []predicate.Kind{predicate.KindPath, predicate.KindPath}
	pathBytes := []predicate.Kind{predicate.KindPath, predicate.KindInt}
	pathSeconds := []predicate.Kind{predicate.KindPath, predicate.KindInt}

	return registerSpecs(r, []predicate.Spec{
		{
			Category: "file", Name: "exists", Kinds: path,
			Help: "path resolves to any filesystem entry (symlinks followed)",
			Eval: statEval(func(os.FileInfo) bool { return true }),
		},
		{
			Category: "file", Name: "directory", Kinds: path,
			Help: "path resolves to a directory",
			Eval: statEval(func(info os.FileInfo) bool { return info.IsDir() }),
		},
		{
			Category: "file", Name: "regular", Kinds: path,
			Help: "path resolves to a regular file",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode().IsRegular() }),
		},
		{
			Category: "file", Name: "symlink", Kinds: path,
			Help: "path is itself a symbolic link (not followed)",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				// Lstat: the link itself, whether or not its target exists.
				info, err := os.Lstat(expandPath(ops[0].Path()))
				if err != nil {
					return false, nil
				}
				return info.Mode()&os.ModeSymlink != 0, nil
			},
		},
		{
			Category: "file", Name: "block-device", Kinds: path,
			Help: "path resolves to a block special file",
			Eval: statEval(func(info os.FileInfo) bool {
				mode := info.Mode()
				return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0
			}),
		},
		{
			Category: "file", Name: "character-device", Kinds: path,
			Help: "path resolves to a character special file",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode()&os.ModeCharDevice != 0 }),
		},
		{
			Category: "file", Name: "named-pipe", Kinds: path,
			Help: "path resolves to a named pipe (FIFO)",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode()&os.ModeNamedPipe != 0 }),
		},
		{
			Category: "file", Name: "socket", Kinds: path,
			Help: "path resolves to a socket",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode()&os.ModeSocket != 0 }),
		},
		{
			Category: "file", Name: "non-empty", Kinds: path,
			Help: "path is a regular file with size greater than zero",
			Eval: statEval(func(info os.FileInfo) bool {
				return info.Mode().IsRegular() && info.Size() > 0
			}),
		},
		{
			Category: "file", Name: "readable", Kinds: path,
			Help: "current effective user can read the resolved entry",
			Eval: accessEval(unix.R_OK),
		},
		{
			Category: "file", Name: "writable", Kinds: path,
			Help: "current effective user can write the resolved entry",
			Eval: accessEval(unix.W_OK),
		},
		{
			Category: "file", Name: "executable", Kinds: path,
			Help: "current effective user can execute the resolved entry",
			Eval: accessEval(unix.X_OK),
		},
		{
			Category: "file", Name: "has-suid", Kinds: path,
			Help: "resolved entry has the set-user-ID bit",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode()&os.ModeSetuid != 0 }),
		},
		{
			Category: "file", Name: "has-sgid", Kinds: path,
			Help: "resolved entry has the set-group-ID bit",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode()&os.ModeSetgid != 0 }),
		},
		{
			Category: "file", Name: "has-sticky", Kinds: path,
			Help: "resolved entry has the sticky bit",
			Eval: statEval(func(info os.FileInfo) bool { return info.Mode()&os.ModeSticky != 0 }),
		},
		{
			Category: "file", Name: "owned-by-effective-user", Kinds: path,
			Help: "resolved entry is owned by the effective user ID",
			Eval: ownedByEval(func(st *unix.Stat_t) uint32 { return st.Uid }, unix.Geteuid),
		},
		{
			Category: "file", Name: "owned-by-effective-group", Kinds: path,
			Help: "resolved entry is owned by the effective group ID",
			Eval: ownedByEval(func(st *unix.Stat_t) uint32 { return st.Gid }, unix.Getegid),
		},
		{
			Category: "file", Name: "has-same-inode", Kinds: pathPair,
			Help: "both paths resolve to the same device and inode",
			Eval: sameInode,
		},
		{
			Category: "file", Name: "newer-than", Kinds: pathPair,
			Help: "first path was modified more recently than the second",
			Eval: statPairEval(func(a, b os.FileInfo) bool { return a.ModTime().After(b.ModTime()) }),
		},
		{
			Category: "file", Name: "older-than", Kinds: pathPair,
			Help: "first path was modified less recently than the second",
			Eval: statPairEval(func(a, b os.FileInfo) bool { return a.ModTime().Before(b.ModTime()) }),
		},
		{
			Category: "file", Name: "exists-glob", Kinds: path, Params: []string{"pattern"},
			Help: "any filesystem entry matches the glob pattern",
			Eval: globEval(func(string) bool { return true }),
		},
		{
			Category: "file", Name: "non-empty-glob", Kinds: path, Params: []string{"pattern"},
			Help: "any regular file matching the glob pattern has size greater than zero",
			Eval: globEval(func(p string) bool {
				info, err := os.Stat(p)
				return err == nil && info.Mode().IsRegular() && info.Size() > 0
			}),
		},
		{
			Category: "file", Name: "size-gt", Kinds: pathBytes, Params: []string{"path", "bytes"},
			Help: "resolved entry is larger than the given byte count",
			Eval: sizeEval(func(size, want int64) bool { return size > want }),
		},
		{
			Category: "file", Name: "size-ge", Kinds: pathBytes, Params: []string{"path", "bytes"},
			Help: "resolved entry is at least the given byte count",
			Eval: sizeEval(func(size, want int64) bool { return size >= want }),
		},
		{
			Category: "file", Name: "size-lt", Kinds: pathBytes, Params: []string{"path", "bytes"},
			Help: "resolved entry is smaller than the given byte count",
			Eval: sizeEval(func(size, want int64) bool { return size < want }),
		},
		{
			Category: "file", Name: "size-le", Kinds: pathBytes, Params: []string{"path", "bytes"},
			Help: "resolved entry is at most the given byte count",
			Eval: sizeEval(func(size, want int64) bool { return size <= want }),
		},
		{
			Category: "file", Name: "size-eq", Kinds: pathBytes, Params: []string{"path", "bytes"},
			Help: "resolved entry is exactly the given byte count",
			Eval: sizeEval(func(size, want int64) bool { return size == want }),
		},
		{
			Category: "file", Name: "mtime-older-than", Kinds: pathSeconds, Params: []string{"path", "seconds"},
			Help: "resolved entry was last modified more than N seconds ago",
			Eval: mtimeEval(func(age time.Duration, want int64) bool {
				return age > time.Duration(want)*time.Second
			}),
		},
		{
			Category: "file", Name: "mtime-newer-than", Kinds: pathSeconds, Params: []string{"path", "seconds"},
			Help: "resolved entry was last modified less than N seconds ago",
			Eval: mtimeEval(func(age time.Duration, want int64) bool {
				return age >= 0 && age < time.Duration(want)*time.Second
			}),
		},
	})
}
