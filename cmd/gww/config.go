package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
)

var errHomeNotSet = errors.New("HOME not set")

// config carries the environment-derived settings. It is resolved once
// per invocation and passed down explicitly; core logic never reads
// the process environment itself.
type config struct {
	WorktreeRootOverride string
	Home                 string
	ColorEnabled         bool
}

func loadConfigFromEnv() config {
	return config{
		WorktreeRootOverride: strings.TrimSpace(os.Getenv("WORKTREE_ROOT")),
		Home:                 os.Getenv("HOME"),
		ColorEnabled:         !envFlagEnabled("GWW_NO_COLOUR") && termenv.EnvColorProfile() != termenv.Ascii,
	}
}

// worktreeRoot is the directory all planned worktree paths live under:
// the WORKTREE_ROOT override when set, else ~/devel/worktrees.
func (c config) worktreeRoot() (string, error) {
	if c.WorktreeRootOverride != "" {
		return c.WorktreeRootOverride, nil
	}
	if strings.TrimSpace(c.Home) == "" {
		return "", errHomeNotSet
	}
	return filepath.Join(c.Home, "devel", "worktrees"), nil
}

func envFlagEnabled(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
