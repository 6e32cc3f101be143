package main

import "testing"

func TestResolveEnv(t *testing.T) {
	t.Setenv("ENV", "prod")

	if got := resolveEnv("local"); got != "local" {
		t.Errorf("flag override: got %q, want %q", got, "local")
	}
	if got := resolveEnv(""); got != "prod" {
		t.Errorf("ENV fallback: got %q, want %q", got, "prod")
	}

	t.Setenv("ENV", "")
	if got := resolveEnv(""); got != "local" {
		t.Errorf("default: got %q, want %q", got, "local")
	}
}
