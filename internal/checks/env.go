package checks

import (
	"context"
	"os"

	"github.com/roach88/is/internal/predicate"
)

func registerEnv(r *predicate.Registry) error {
	return registerSpecs(r, []predicate.Spec{
		{
			Category: "env", Name: "set",
			Kinds: []predicate.Kind{predicate.KindString}, Params: []string{"name"},
			Help: "variable exists in the environment, even with an empty value",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				// Presence is the test: NAME="" counts as set.
				_, ok := os.LookupEnv(ops[0].Str())
				return ok, nil
			},
		},
		{
			Category: "env", Name: "equal-to",
			Kinds:  []predicate.Kind{predicate.KindString, predicate.KindString},
			Params: []string{"name", "value"},
			Help:   "variable is set and its value matches exactly",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				v, ok := os.LookupEnv(ops[0].Str())
				return ok && v == ops[1].Str(), nil
			},
		},
	})
}
