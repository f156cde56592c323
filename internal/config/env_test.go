package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestNonNegIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "")
	if got := nonNegIntEnvOrDefault("INT_TEST", 4); got != 4 {
		t.Fatalf("expected default when unset, got %d", got)
	}

	t.Setenv("INT_TEST", "0")
	if got := nonNegIntEnvOrDefault("INT_TEST", 4); got != 0 {
		t.Fatalf("expected zero to be accepted, got %d", got)
	}

	t.Setenv("INT_TEST", "-1")
	if got := nonNegIntEnvOrDefault("INT_TEST", 4); got != 4 {
		t.Fatalf("expected default on negative, got %d", got)
	}

	t.Setenv("INT_TEST", "junk")
	if got := nonNegIntEnvOrDefault("INT_TEST", 4); got != 4 {
		t.Fatalf("expected default on junk, got %d", got)
	}
}
