// Package checks implements the category evaluators for the `is` predicate
// engine: file, string, int, float, semver, env, system, and net.
//
// Evaluators return false for legitimate negative outcomes (a missing file,
// an unreachable host) and reserve errors for malformed input such as a
// regex pattern that fails to compile. None of them mutate external state,
// so repeated evaluation with unchanged inputs yields the same result.
package checks

import (
	"fmt"

	"github.com/roach88/is/internal/predicate"
)

// Register populates the registry with every category and predicate.
// Called once at process start; any error is a registration bug.
func Register(r *predicate.Registry) error {
	type category struct {
		name     string
		help     string
		register func(*predicate.Registry) error
	}

	categories := []category{
		{"file", "filesystem checks", registerFile},
		{"string", "string comparisons and shape checks", registerString},
		{"int", "integer comparisons", registerInt},
		{"float", "floating-point comparisons", registerFloat},
		{"semver", "semantic version comparisons", registerSemver},
		{"env", "environment variable checks", registerEnv},
		{"system", "platform and toolchain checks", registerSystem},
		{"net", "network reachability probes", registerNet},
	}

	for _, c := range categories {
		if err := r.AddCategory(c.name, c.help); err != nil {
			return fmt.Errorf("register category %s: %w", c.name, err)
		}
		if err := c.register(r); err != nil {
			return fmt.Errorf("register category %s: %w", c.name, err)
		}
	}
	return nil
}

// NewRegistry builds the full registry. Registration failure is a
// programming error in the compiled predicate set, not a runtime
// condition, so it panics; the binary's panic guard reports it.
func NewRegistry() *predicate.Registry {
	r := predicate.NewRegistry()
	if err := Register(r); err != nil {
		panic(fmt.Sprintf("checks: %v", err))
	}
	return r
}

// registerSpecs adds each spec, stopping at the first failure.
func registerSpecs(r *predicate.Registry, specs []predicate.Spec) error {
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}
