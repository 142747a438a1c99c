package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntComparisons(t *testing.T) {
	evalTrue(t, "int", "eq", "3", "3")
	evalFalse(t, "int", "eq", "3", "4")
	evalTrue(t, "int", "ne", "3", "4")

	evalTrue(t, "int", "gt", "10", "9")
	evalFalse(t, "int", "gt", "9", "9")
	evalTrue(t, "int", "ge", "9", "9")
	evalTrue(t, "int", "lt", "-2", "-1")
	evalTrue(t, "int", "le", "5", "5")

	// Numeric order, not lexicographic: 10 > 9.
	evalTrue(t, "int", "gt", "10", "9")
	evalTrue(t, "int", "lt", "9", "10")
}

func TestIntInRange(t *testing.T) {
	evalTrue(t, "int", "in-range", "7", "5", "10")
	evalTrue(t, "int", "in-range", "5", "5", "10")
	evalTrue(t, "int", "in-range", "10", "5", "10")
	evalFalse(t, "int", "in-range", "12", "5", "10")
	evalFalse(t, "int", "in-range", "4", "5", "10")
	evalTrue(t, "int", "in-range", "-3", "-5", "0")
}

func TestIntSign(t *testing.T) {
	evalTrue(t, "int", "positive", "1")
	evalFalse(t, "int", "positive", "0")
	evalFalse(t, "int", "positive", "-1")

	evalTrue(t, "int", "negative", "-1")
	evalFalse(t, "int", "negative", "0")
	evalFalse(t, "int", "negative", "1")
}

func TestIntMalformedOperand(t *testing.T) {
	_, err := eval(t, "int", "eq", "3", "three")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"three"`)

	_, err = eval(t, "int", "eq", "3.5", "3")
	require.Error(t, err)
}

func TestFloatComparisons(t *testing.T) {
	evalTrue(t, "float", "eq", "1.5", "1.5")
	evalFalse(t, "float", "ne", "1.5", "1.5")

	// Exact comparison is the documented sharp edge.
	evalFalse(t, "float", "eq", "0.3", "0.30000001")

	evalTrue(t, "float", "gt", "2.5", "2.4")
	evalTrue(t, "float", "ge", "2.5", "2.5")
	evalTrue(t, "float", "lt", "-0.1", "0.0")
	evalTrue(t, "float", "le", "1.0", "1.0")
}

func TestFloatApproxEq(t *testing.T) {
	evalTrue(t, "float", "approx-eq", "10.0", "10.0001", "0.001")
	evalFalse(t, "float", "approx-eq", "10.0", "10.1", "0.001")

	// The tolerance boundary is inclusive.
	evalTrue(t, "float", "approx-eq", "1.0", "1.5", "0.5")
	evalTrue(t, "float", "approx-eq", "5.0", "5.0", "0")

	// Order of a and b does not matter.
	evalTrue(t, "float", "approx-eq", "10.0001", "10.0", "0.001")
}

func TestFloatInRange(t *testing.T) {
	evalTrue(t, "float", "in-range", "0.5", "0.0", "1.0")
	evalTrue(t, "float", "in-range", "0.0", "0.0", "1.0")
	evalTrue(t, "float", "in-range", "1.0", "0.0", "1.0")
	evalFalse(t, "float", "in-range", "1.1", "0.0", "1.0")
}

func TestFloatMalformedOperand(t *testing.T) {
	_, err := eval(t, "float", "approx-eq", "1.0", "2.0", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"lots"`)
}
