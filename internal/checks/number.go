package checks

import (
	"context"
	"math"

	"github.com/roach88/is/internal/predicate"
)

// intPairEval builds an evaluator over two integer operands.
func intPairEval(cmp func(a, b int64) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		return cmp(ops[0].Int(), ops[1].Int()), nil
	}
}

// floatPairEval builds an evaluator over two float operands.
func floatPairEval(cmp func(a, b float64) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		return cmp(ops[0].Float(), ops[1].Float()), nil
	}
}

func registerInt(r *predicate.Registry) error {
	pair := []predicate.Kind{predicate.KindInt, predicate.KindInt}
	one := []predicate.Kind{predicate.KindInt}

	return registerSpecs(r, []predicate.Spec{
		{
			Category: "int", Name: "eq", Kinds: pair,
			Help: "integers are equal",
			Eval: intPairEval(func(a, b int64) bool { return a == b }),
		},
		{
			Category: "int", Name: "ne", Kinds: pair,
			Help: "integers differ",
			Eval: intPairEval(func(a, b int64) bool { return a != b }),
		},
		{
			Category: "int", Name: "gt", Kinds: pair,
			Help: "first integer is greater than the second",
			Eval: intPairEval(func(a, b int64) bool { return a > b }),
		},
		{
			Category: "int", Name: "ge", Kinds: pair,
			Help: "first integer is greater than or equal to the second",
			Eval: intPairEval(func(a, b int64) bool { return a >= b }),
		},
		{
			Category: "int", Name: "lt", Kinds: pair,
			Help: "first integer is less than the second",
			Eval: intPairEval(func(a, b int64) bool { return a < b }),
		},
		{
			Category: "int", Name: "le", Kinds: pair,
			Help: "first integer is less than or equal to the second",
			Eval: intPairEval(func(a, b int64) bool { return a <= b }),
		},
		{
			Category: "int", Name: "in-range",
			Kinds:  []predicate.Kind{predicate.KindInt, predicate.KindInt, predicate.KindInt},
			Params: []string{"value", "low", "high"},
			Help:   "value is within the inclusive range [low, high]",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				v, lo, hi := ops[0].Int(), ops[1].Int(), ops[2].Int()
				return v >= lo && v <= hi, nil
			},
		},
		{
			Category: "int", Name: "positive", Kinds: one,
			Help: "integer is greater than zero",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				return ops[0].Int() > 0, nil
			},
		},
		{
			Category: "int", Name: "negative", Kinds: one,
			Help: "integer is less than zero",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				return ops[0].Int() < 0, nil
			},
		},
	})
}

func registerFloat(r *predicate.Registry) error {
	pair := []predicate.Kind{predicate.KindFloat, predicate.KindFloat}
	triple := []predicate.Kind{predicate.KindFloat, predicate.KindFloat, predicate.KindFloat}

	return registerSpecs(r, []predicate.Spec{
		{
			Category: "float", Name: "eq", Kinds: pair,
			Help: "floats are exactly equal (use approx-eq for tolerance)",
			Eval: floatPairEval(func(a, b float64) bool { return a == b }),
		},
		{
			Category: "float", Name: "ne", Kinds: pair,
			Help: "floats are not exactly equal",
			Eval: floatPairEval(func(a, b float64) bool { return a != b }),
		},
		{
			Category: "float", Name: "gt", Kinds: pair,
			Help: "first float is greater than the second",
			Eval: floatPairEval(func(a, b float64) bool { return a > b }),
		},
		{
			Category: "float", Name: "ge", Kinds: pair,
			Help: "first float is greater than or equal to the second",
			Eval: floatPairEval(func(a, b float64) bool { return a >= b }),
		},
		{
			Category: "float", Name: "lt", Kinds: pair,
			Help: "first float is less than the second",
			Eval: floatPairEval(func(a, b float64) bool { return a < b }),
		},
		{
			Category: "float", Name: "le", Kinds: pair,
			Help: "first float is less than or equal to the second",
			Eval: floatPairEval(func(a, b float64) bool { return a <= b }),
		},
		{
			Category: "float", Name: "approx-eq", Kinds: triple,
			Params: []string{"a", "b", "tolerance"},
			Help:   "floats are equal within an inclusive tolerance",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				a, b, tol := ops[0].Float(), ops[1].Float(), ops[2].Float()
				return math.Abs(a-b) <= tol, nil
			},
		},
		{
			Category: "float", Name: "in-range", Kinds: triple,
			Params: []string{"value", "low", "high"},
			Help:   "value is within the inclusive range [low, high]",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				v, lo, hi := ops[0].Float(), ops[1].Float(), ops[2].Float()
				return v >= lo && v <= hi, nil
			},
		},
	})
}
