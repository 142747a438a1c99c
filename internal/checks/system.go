package checks

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"

	isatty "github.com/mattn/go-isatty"

	"github.com/roach88/is/internal/predicate"
)

// osAliases maps common platform names onto Go's GOOS identifiers.
var osAliases = map[string]string{
	"macos": "darwin",
}

// archAliases maps uname-style machine names onto Go's GOARCH identifiers.
var archAliases = map[string]string{
	"x86_64":  "amd64",
	"aarch64": "arm64",
}

// matchesPlatform compares a caller-supplied identifier against the
// running platform's canonical value, case-insensitively and through the
// alias table.
func matchesPlatform(name, canonical string, aliases map[string]string) bool {
	n := strings.ToLower(name)
	if alias, ok := aliases[n]; ok {
		n = alias
	}
	return n == canonical
}

// commandExists reports whether the name resolves to an executable on
// PATH. Names containing a path separator are checked directly, the way
// the shell treats ./script or /usr/bin/env.
func commandExists(name string) bool {
	path, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrDot) {
		// Resolved relative to the current directory; it exists and is
		// executable, which is all this predicate asks.
		return true
	}
	return err == nil && path != ""
}

func registerSystem(r *predicate.Registry) error {
	return registerSpecs(r, []predicate.Spec{
		{
			Category: "system", Name: "os",
			Kinds: []predicate.Kind{predicate.KindString}, Params: []string{"name"},
			Help: "running operating system matches the identifier (accepts macos for darwin)",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				return matchesPlatform(ops[0].Str(), runtime.GOOS, osAliases), nil
			},
		},
		{
			Category: "system", Name: "arch",
			Kinds: []predicate.Kind{predicate.KindString}, Params: []string{"name"},
			Help: "machine architecture matches the identifier (accepts x86_64, aarch64)",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				return matchesPlatform(ops[0].Str(), runtime.GOARCH, archAliases), nil
			},
		},
		{
			Category: "system", Name: "command-exists",
			Kinds: []predicate.Kind{predicate.KindString}, Params: []string{"command"},
			Help: "command resolves to an executable on the search path",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				return commandExists(ops[0].Str()), nil
			},
		},
		{
			Category: "system", Name: "fd-tty",
			Kinds: []predicate.Kind{predicate.KindInt}, Params: []string{"fd"},
			Help: "file descriptor is open on a terminal",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				fd := ops[0].Int()
				if fd < 0 {
					return false, nil
				}
				return isatty.IsTerminal(uintptr(fd)), nil
			},
		},
	})
}
