package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var errGitNotInstalled = errors.New("git not installed")
var errNotInGitRepository = errors.New("not a git repository")

// gitOutput runs a read-side git command, preferring the go-git
// emulation and falling back to the git binary for anything the
// adapter does not handle.
func gitOutput(dir string, args ...string) (string, error) {
	out, handled, err := gogitCommandOutput(dir, args...)
	if handled {
		return out, err
	}
	return execGitOutput(dir, args...)
}

func execGitOutput(dir string, args ...string) (string, error) {
	gitBin, err := exec.LookPath("git")
	if err != nil {
		return "", errGitNotInstalled
	}
	cmd := exec.Command(gitBin, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.New(msg)
	}
	return stdout.String(), nil
}

// repoRootForDir walks up from dir looking for a .git entry. A .git
// file (linked worktree) counts the same as a .git directory.
func repoRootForDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errNotInGitRepository
		}
		dir = wd
	}
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errNotInGitRepository
	}
	for {
		dotGit := filepath.Join(current, ".git")
		if _, err := os.Stat(dotGit); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", errNotInGitRepository
}
