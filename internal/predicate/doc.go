// Package predicate implements the core predicate engine for the `is` CLI.
//
// The engine is a single static lookup table built once at process start:
// every predicate is a Spec describing its category, name, operand kinds,
// and evaluation function. Dispatch resolves a (category, name) pair,
// parses raw string operands into typed values, and invokes the evaluator.
//
// DESIGN:
//
// Closed predicate set:
// The set of categories and predicates is fixed at compile time. Specs are
// registered during startup and never mutated afterward, so lookup needs no
// locking and the valid set can be enumerated for help text and error
// suggestions.
//
// Exactly one result:
// An evaluation produces either a boolean or an error - never both, never
// neither. Evaluators return false (not an error) for legitimate negative
// outcomes such as a nonexistent path or an unreachable host. Errors are
// reserved for malformed input (UsageError) and unexpected faults.
//
// Typed operands:
// Raw argument strings are converted to typed operands (string, int, float,
// version, path) before evaluation. Parse failures name the offending
// operand and the expected shape. Evaluator code accesses operands through
// kind-checked accessors; a kind mismatch is a registration bug and panics.
package predicate
