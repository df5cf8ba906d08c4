package main

import (
	"strings"
	"testing"
)

func TestCheckoutRejectsTooManyArgs(t *testing.T) {
	cmd := newRootCommand([]string{"gww", "checkout", "one", "two"})
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "too many arguments") {
		t.Fatalf("expected too-many-arguments message, got %q", msg)
	}
	if !strings.Contains(msg, "Usage:") {
		t.Fatalf("expected usage output in error, got %q", msg)
	}
}

func TestRemoveRejectsTooManyArgs(t *testing.T) {
	cmd := newRootCommand([]string{"gww", "rm", "one", "two"})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "too many arguments") {
		t.Fatalf("expected too-many-arguments error, got %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := newRootCommand([]string{"gww", "frobnicate"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestCheckoutAliases(t *testing.T) {
	root := newRootCommand([]string{"gww"})
	for _, alias := range []struct{ use, alias string }{
		{"checkout [branch]", "co"},
		{"list", "ls"},
		{"remove [branch]", "rm"},
	} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Use == alias.use {
				for _, a := range cmd.Aliases {
					if a == alias.alias {
						found = true
					}
				}
			}
		}
		if !found {
			t.Fatalf("expected alias %q for %q", alias.alias, alias.use)
		}
	}
}

func TestTimechooserHidden(t *testing.T) {
	root := newRootCommand([]string{"gww"})
	for _, cmd := range root.Commands() {
		if cmd.Use == "timechooser" {
			if !cmd.Hidden {
				t.Fatalf("timechooser must stay hidden")
			}
			return
		}
	}
	t.Fatalf("timechooser command not registered")
}
