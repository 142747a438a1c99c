package checks

import "testing"

func TestEnvSet(t *testing.T) {
	t.Setenv("IS_TEST_SET", "value")
	evalTrue(t, "env", "set", "IS_TEST_SET")

	// An empty value still counts as set; presence is the test.
	t.Setenv("IS_TEST_EMPTY", "")
	evalTrue(t, "env", "set", "IS_TEST_EMPTY")

	evalFalse(t, "env", "set", "IS_TEST_DEFINITELY_UNSET_12345")
}

func TestEnvEqualTo(t *testing.T) {
	t.Setenv("IS_TEST_VALUE", "expected")

	evalTrue(t, "env", "equal-to", "IS_TEST_VALUE", "expected")
	evalFalse(t, "env", "equal-to", "IS_TEST_VALUE", "other")
	evalFalse(t, "env", "equal-to", "IS_TEST_VALUE", "Expected")

	t.Setenv("IS_TEST_BLANK", "")
	evalTrue(t, "env", "equal-to", "IS_TEST_BLANK", "")

	// Unset variable never equals anything, including the empty string.
	evalFalse(t, "env", "equal-to", "IS_TEST_DEFINITELY_UNSET_12345", "")
}
