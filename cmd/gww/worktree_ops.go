package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitWorktreeAdd issues the create-worktree mutation. The parent of
// the target path must exist before git runs; everything past that is
// owned by git itself.
func gitWorktreeAdd(repoRoot string, path string, branch string, remoteRef string) error {
	args := []string{"worktree", "add", path}
	switch {
	case remoteRef != "":
		args = append(args, "-b", branch, remoteRef)
	case branch != "":
		if localBranchExists(repoRoot, branch) {
			args = append(args, branch)
		} else {
			args = append(args, "-b", branch)
		}
	}

	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", parent, err)
	}

	_, err := execGitOutput(repoRoot, args...)
	return err
}

func gitWorktreeRemove(repoRoot string, path string) error {
	_, err := execGitOutput(repoRoot, "worktree", "remove", path)
	return err
}
