package predicate

import (
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Kind identifies the type a raw operand string is parsed into.
// The set is closed; each Spec declares one Kind per operand position.
type Kind int

const (
	// KindString accepts any raw string, including the empty string.
	KindString Kind = iota

	// KindInt accepts an optional sign followed by base-10 digits.
	KindInt

	// KindFloat accepts standard decimal notation.
	KindFloat

	// KindVersion accepts a strict major.minor.patch semantic version.
	// Pre-release and build metadata are accepted and compared per
	// semver precedence rules.
	KindVersion

	// KindPath accepts any raw string. Filesystem resolution (including
	// tilde expansion) is the file evaluator's job, not the parser's.
	KindPath
)

// String returns the human-readable kind name used in usage errors
// and generated help text.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindVersion:
		return "version"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// shape describes the expected operand shape for parse error messages.
func (k Kind) shape() string {
	switch k {
	case KindInt:
		return "a base-10 integer"
	case KindFloat:
		return "a decimal number"
	case KindVersion:
		return "a semantic version (major.minor.patch)"
	default:
		return "a string"
	}
}

// Operand is a raw argument parsed into a typed value. Operands are
// created per invocation and discarded after evaluation.
type Operand struct {
	kind    Kind
	raw     string
	intVal  int64
	fltVal  float64
	version *semver.Version
}

// Kind returns the operand's parsed kind.
func (o Operand) Kind() Kind { return o.kind }

// Raw returns the original argument string. Valid for every kind.
func (o Operand) Raw() string { return o.raw }

// Str returns the operand as a string. Panics unless the kind is KindString.
func (o Operand) Str() string {
	o.mustBe(KindString)
	return o.raw
}

// Path returns the operand as an unresolved filesystem path.
// Panics unless the kind is KindPath.
func (o Operand) Path() string {
	o.mustBe(KindPath)
	return o.raw
}

// Int returns the parsed integer value. Panics unless the kind is KindInt.
func (o Operand) Int() int64 {
	o.mustBe(KindInt)
	return o.intVal
}

// Float returns the parsed float value. Panics unless the kind is KindFloat.
func (o Operand) Float() float64 {
	o.mustBe(KindFloat)
	return o.fltVal
}

// Version returns the parsed semantic version.
// Panics unless the kind is KindVersion.
func (o Operand) Version() *semver.Version {
	o.mustBe(KindVersion)
	return o.version
}

func (o Operand) mustBe(k Kind) {
	if o.kind != k {
		panic(fmt.Sprintf("predicate: operand %q accessed as %s but parsed as %s", o.raw, k, o.kind))
	}
}

// ParseOperand converts one raw argument into a typed operand.
// A malformed value yields a UsageError naming the operand and the
// expected shape.
func ParseOperand(kind Kind, raw string) (Operand, error) {
	op := Operand{kind: kind, raw: raw}

	switch kind {
	case KindString, KindPath:
		return op, nil

	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Operand{}, newBadOperand(kind, raw)
		}
		op.intVal = n
		return op, nil

	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Operand{}, newBadOperand(kind, raw)
		}
		op.fltVal = f
		return op, nil

	case KindVersion:
		// StrictNewVersion rejects partial versions ("1.2"), leading "v",
		// and non-numeric core fields.
		v, err := semver.StrictNewVersion(raw)
		if err != nil {
			return Operand{}, newBadOperand(kind, raw)
		}
		op.version = v
		return op, nil

	default:
		return Operand{}, fmt.Errorf("unknown operand kind %d", int(kind))
	}
}

// ParseOperands converts raw arguments into typed operands, one per kind.
// The caller guarantees len(raw) == len(kinds); Dispatch enforces arity
// before parsing.
func ParseOperands(kinds []Kind, raw []string) ([]Operand, error) {
	ops := make([]Operand, len(kinds))
	for i, kind := range kinds {
		op, err := ParseOperand(kind, raw[i])
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}
