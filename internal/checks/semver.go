package checks

import (
	"context"

	"github.com/roach88/is/internal/predicate"
)

// semverPairEval builds an evaluator applying cmp to the result of
// Compare(a, b): negative when a < b, zero when equal, positive when
// a > b. Comparison is field-wise numeric over (major, minor, patch),
// so 1.2.10 orders after 1.2.9; pre-release tags rank below their
// release per semver precedence.
func semverPairEval(cmp func(c int) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		return cmp(ops[0].Version().Compare(ops[1].Version())), nil
	}
}

func registerSemver(r *predicate.Registry) error {
	pair := []predicate.Kind{predicate.KindVersion, predicate.KindVersion}

	return registerSpecs(r, []predicate.Spec{
		{
			Category: "semver", Name: "eq", Kinds: pair,
			Help: "versions have equal precedence",
			Eval: semverPairEval(func(c int) bool { return c == 0 }),
		},
		{
			Category: "semver", Name: "ne", Kinds: pair,
			Help: "versions differ in precedence",
			Eval: semverPairEval(func(c int) bool { return c != 0 }),
		},
		{
			Category: "semver", Name: "gt", Kinds: pair,
			Help: "first version is greater than the second",
			Eval: semverPairEval(func(c int) bool { return c > 0 }),
		},
		{
			Category: "semver", Name: "ge", Kinds: pair,
			Help: "first version is greater than or equal to the second",
			Eval: semverPairEval(func(c int) bool { return c >= 0 }),
		},
		{
			Category: "semver", Name: "lt", Kinds: pair,
			Help: "first version is less than the second",
			Eval: semverPairEval(func(c int) bool { return c < 0 }),
		},
		{
			Category: "semver", Name: "le", Kinds: pair,
			Help: "first version is less than or equal to the second",
			Eval: semverPairEval(func(c int) bool { return c <= 0 }),
		},
	})
}
