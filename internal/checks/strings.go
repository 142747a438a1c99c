package checks

import (
	"context"
	"log/slog"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/roach88/is/internal/predicate"
)

// foldCase applies Unicode case folding, the locale-independent mapping
// used by every -ci predicate. Folding both sides makes comparisons
// symmetric, unlike a bare ToLower round-trip.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// stringPairEval builds an evaluator over two string operands.
func stringPairEval(check func(a, b string) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		return check(ops[0].Str(), ops[1].Str()), nil
	}
}

// stringEval builds an evaluator over one string operand.
func stringEval(check func(s string) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		return check(ops[0].Str()), nil
	}
}

// regexEval matches the first operand against the second, optionally case
// insensitively. Matching is unanchored; callers anchor with ^ and $.
// A pattern that fails to compile is a usage error, not a false result.
func regexEval(caseInsensitive bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		pattern := ops[1].Str()
		compiled := pattern
		if caseInsensitive {
			compiled = "(?i:" + pattern + ")"
		}
		re, err := regexp.Compile(compiled)
		if err != nil {
			return false, predicate.NewBadPattern(pattern, err)
		}
		return re.MatchString(ops[0].Str()), nil
	}
}

// lenEval compares the rune count of the first operand against the second.
func lenEval(cmp func(n, want int64) bool) predicate.EvalFunc {
	return func(_ context.Context, ops []predicate.Operand) (bool, error) {
		n := int64(utf8.RuneCountInString(ops[0].Str()))
		return cmp(n, ops[1].Int()), nil
	}
}

// needsQuoting flags values a shell may misparse when left unquoted:
// the empty word, anything flag-shaped, and the classic test operators.
func needsQuoting(s string) bool {
	switch s {
	case "", "-a", "-o", "!", "(", ")":
		return true
	}
	return strings.HasPrefix(s, "-")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func registerString(r *predicate.Registry) error {
	one := []predicate.Kind{predicate.KindString}
	pair := []predicate.Kind{predicate.KindString, predicate.KindString}
	strN := []predicate.Kind{predicate.KindString, predicate.KindInt}

	return registerSpecs(r, []predicate.Spec{
		{
			Category: "string", Name: "equal", Kinds: pair,
			Help: "strings are byte-for-byte equal",
			Eval: stringPairEval(func(a, b string) bool { return a == b }),
		},
		{
			Category: "string", Name: "not-equals", Kinds: pair,
			Help: "strings differ",
			Eval: stringPairEval(func(a, b string) bool { return a != b }),
		},
		{
			Category: "string", Name: "empty", Kinds: one,
			Help: "string has zero length",
			Eval: stringEval(func(s string) bool { return s == "" }),
		},
		{
			Category: "string", Name: "not-empty", Kinds: one,
			Help: "string has nonzero length",
			Eval: stringEval(func(s string) bool { return s != "" }),
		},
		{
			Category: "string", Name: "equal-ci", Kinds: pair,
			Help: "strings are equal under Unicode case folding",
			Eval: stringPairEval(func(a, b string) bool { return foldCase(a) == foldCase(b) }),
		},
		{
			Category: "string", Name: "matches-regex", Kinds: pair, Params: []string{"string", "pattern"},
			Help: "string matches the regular expression (unanchored)",
			Eval: regexEval(false),
		},
		{
			Category: "string", Name: "matches-regex-ci", Kinds: pair, Params: []string{"string", "pattern"},
			Help: "string matches the regular expression, case-insensitively",
			Eval: regexEval(true),
		},
		{
			Category: "string", Name: "contains", Kinds: pair, Params: []string{"string", "needle"},
			Help: "string contains the substring",
			Eval: stringPairEval(strings.Contains),
		},
		{
			Category: "string", Name: "contains-ci", Kinds: pair, Params: []string{"string", "needle"},
			Help: "string contains the substring, case-insensitively",
			Eval: stringPairEval(func(a, b string) bool {
				return strings.Contains(foldCase(a), foldCase(b))
			}),
		},
		{
			Category: "string", Name: "starts-with", Kinds: pair, Params: []string{"string", "prefix"},
			Help: "string starts with the prefix",
			Eval: stringPairEval(strings.HasPrefix),
		},
		{
			Category: "string", Name: "starts-with-ci", Kinds: pair, Params: []string{"string", "prefix"},
			Help: "string starts with the prefix, case-insensitively",
			Eval: stringPairEval(func(a, b string) bool {
				return strings.HasPrefix(foldCase(a), foldCase(b))
			}),
		},
		{
			Category: "string", Name: "ends-with", Kinds: pair, Params: []string{"string", "suffix"},
			Help: "string ends with the suffix",
			Eval: stringPairEval(strings.HasSuffix),
		},
		{
			Category: "string", Name: "ends-with-ci", Kinds: pair, Params: []string{"string", "suffix"},
			Help: "string ends with the suffix, case-insensitively",
			Eval: stringPairEval(func(a, b string) bool {
				return strings.HasSuffix(foldCase(a), foldCase(b))
			}),
		},
		{
			Category: "string", Name: "integer", Kinds: one,
			Help: "string parses as a base-10 integer",
			Eval: stringEval(func(s string) bool {
				_, err := strconv.ParseInt(s, 10, 64)
				return err == nil
			}),
		},
		{
			Category: "string", Name: "number", Kinds: one,
			Help: "string parses as a number (integer or float)",
			Eval: stringEval(func(s string) bool {
				_, err := strconv.ParseFloat(s, 64)
				return err == nil
			}),
		},
		{
			Category: "string", Name: "uuid", Kinds: one,
			Help: "string is a UUID",
			Eval: stringEval(func(s string) bool { return uuid.Validate(s) == nil }),
		},
		{
			Category: "string", Name: "ipv4", Kinds: one,
			Help: "string is a dotted-quad IPv4 address",
			Eval: stringEval(func(s string) bool {
				addr, err := netip.ParseAddr(s)
				return err == nil && addr.Is4()
			}),
		},
		{
			Category: "string", Name: "ascii", Kinds: one,
			Help: "string contains only ASCII characters",
			Eval: stringEval(isASCII),
		},
		{
			Category: "string", Name: "len-gt", Kinds: strN, Params: []string{"string", "n"},
			Help: "string is longer than N characters",
			Eval: lenEval(func(n, want int64) bool { return n > want }),
		},
		{
			Category: "string", Name: "len-ge", Kinds: strN, Params: []string{"string", "n"},
			Help: "string is at least N characters long",
			Eval: lenEval(func(n, want int64) bool { return n >= want }),
		},
		{
			Category: "string", Name: "len-lt", Kinds: strN, Params: []string{"string", "n"},
			Help: "string is shorter than N characters",
			Eval: lenEval(func(n, want int64) bool { return n < want }),
		},
		{
			Category: "string", Name: "len-le", Kinds: strN, Params: []string{"string", "n"},
			Help: "string is at most N characters long",
			Eval: lenEval(func(n, want int64) bool { return n <= want }),
		},
		{
			Category: "string", Name: "len-eq", Kinds: strN, Params: []string{"string", "n"},
			Help: "string is exactly N characters long",
			Eval: lenEval(func(n, want int64) bool { return n == want }),
		},
		{
			Category: "string", Name: "advise-quote", Kinds: one, Params: []string{"value"},
			Help: "value is safe as an unquoted shell word (warns on stderr when not)",
			Eval: func(_ context.Context, ops []predicate.Operand) (bool, error) {
				v := ops[0].Str()
				if needsQuoting(v) {
					slog.Warn(`value may need quoting; use "$VAR" in the shell`, "value", v)
					return false, nil
				}
				return true, nil
			},
		},
	})
}
