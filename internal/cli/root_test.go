package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	old := Version
	Version = "1.2.3"
	t.Cleanup(func() { Version = old })

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "1.2.3" {
		t.Fatalf("expected 1.2.3; got %q", got)
	}
}

func TestRootFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"config", "tick-rate", "log-file", "log-level", "glyphs", "theme", "item"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("missing flag --%s", name)
		}
	}
	if got := cmd.Flags().Lookup("tick-rate").DefValue; got != "250ms" {
		t.Fatalf("expected tick-rate default 250ms; got %q", got)
	}
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"unexpected"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a positional argument")
	}
}

func TestRootBadConfigStopsBeforeTerminal(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", t.TempDir() + "/missing.yaml"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
