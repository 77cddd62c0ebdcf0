package main

import (
	"bytes"
	"testing"
	"time"
)

func TestRootCmdSubcommands(t *testing.T) {
	cmd := rootCmd()

	want := []string{"init", "plan", "sitemap", "stats", "run", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestParsePlanDate(t *testing.T) {
	got, err := parsePlanDate("2026-03-01")
	if err != nil {
		t.Fatalf("parsePlanDate() error = %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsePlanDate() = %v, want %v", got, want)
	}

	if _, err := parsePlanDate("01.03.2026"); err == nil {
		t.Error("expected error for unsupported date format")
	}

	today, err := parsePlanDate("")
	if err != nil {
		t.Fatalf("parsePlanDate(\"\") error = %v", err)
	}
	if today.Hour() != 0 || today.Location() != time.UTC {
		t.Errorf("expected midnight UTC, got %v", today)
	}
}
