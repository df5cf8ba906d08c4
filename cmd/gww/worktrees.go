package main

import "strings"

// worktreeInfo is one entry of `git worktree list --porcelain`.
// Branch is empty for detached worktrees.
type worktreeInfo struct {
	Path   string
	Branch string
}

func listWorktreesInfo(repoRoot string) ([]worktreeInfo, error) {
	out, err := gitOutput(repoRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktreeList(out), nil
}

// parseWorktreeList walks the porcelain records: a "worktree " line
// starts a record, an optional "branch " line attaches the short local
// ref name to the record in progress. The last record is flushed after
// the input ends.
func parseWorktreeList(output string) []worktreeInfo {
	var worktrees []worktreeInfo
	var current *worktreeInfo

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimRight(raw, "\r")
		if value, ok := strings.CutPrefix(line, "worktree "); ok {
			if current != nil {
				worktrees = append(worktrees, *current)
			}
			current = &worktreeInfo{Path: strings.TrimSpace(value)}
			continue
		}
		if value, ok := strings.CutPrefix(line, "branch "); ok {
			if current == nil {
				continue
			}
			ref := strings.TrimSpace(value)
			if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
				current.Branch = name
			}
		}
	}
	if current != nil {
		worktrees = append(worktrees, *current)
	}
	return worktrees
}

func worktreeForBranch(worktrees []worktreeInfo, branch string) (worktreeInfo, bool) {
	if branch == "" {
		return worktreeInfo{}, false
	}
	for _, wt := range worktrees {
		if wt.Branch == branch {
			return wt, true
		}
	}
	return worktreeInfo{}, false
}

func worktreeBranchNames(worktrees []worktreeInfo) []string {
	names := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		if wt.Branch != "" {
			names = append(names, wt.Branch)
		}
	}
	return names
}
