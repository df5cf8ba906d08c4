package main

import (
	"errors"
	"path/filepath"
	"strings"
)

var errNoRepoName = errors.New("unable to determine repository name")

// planWorktreePath computes <root>/<repo>/<branch>. It performs no
// directory creation; that happens only when a worktree is actually
// added.
func planWorktreePath(cfg config, repoRoot string, branch string) (string, error) {
	root, err := cfg.worktreeRoot()
	if err != nil {
		return "", err
	}
	repo, err := repoIdentity(repoRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, repo, branch), nil
}

// repoIdentity prefers the final path segment of the origin URL and
// falls back to the basename of the repository's top-level directory.
func repoIdentity(repoRoot string) (string, error) {
	if url, err := gitOutput(repoRoot, "remote", "get-url", "origin"); err == nil {
		if name, ok := repoNameFromURL(url); ok {
			return name, nil
		}
	}
	top, err := gitOutput(repoRoot, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	name := filepath.Base(strings.TrimSpace(top))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", errNoRepoName
	}
	return name, nil
}

func repoNameFromURL(url string) (string, bool) {
	cleaned := strings.TrimRight(strings.TrimSpace(url), "/")
	if cleaned == "" {
		return "", false
	}
	name := cleaned
	if idx := strings.LastIndex(cleaned, "/"); idx >= 0 {
		name = cleaned[idx+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return "", false
	}
	return name, true
}
