package main

import (
	"fmt"
	"sort"
)

func runRemove(branch string, picker branchPicker) error {
	repoRoot, err := repoRootForDir("")
	if err != nil {
		return err
	}
	worktrees, err := listWorktreesInfo(repoRoot)
	if err != nil {
		return err
	}

	selected := branch
	if selected == "" {
		selected, err = selectWorktreeBranch(worktrees, picker)
		if err != nil {
			return err
		}
	}

	wt, ok := worktreeForBranch(worktrees, selected)
	if !ok {
		return fmt.Errorf("no worktree found for branch %q", selected)
	}
	return gitWorktreeRemove(repoRoot, wt.Path)
}

// selectWorktreeBranch offers only branches that currently have a
// worktree, sorted by name. Removal has no use for the recency tiers.
func selectWorktreeBranch(worktrees []worktreeInfo, picker branchPicker) (string, error) {
	seen := make(map[string]bool)
	branches := make([]string, 0, len(worktrees))
	for _, name := range worktreeBranchNames(worktrees) {
		if seen[name] {
			continue
		}
		seen[name] = true
		branches = append(branches, name)
	}
	sort.Strings(branches)

	if len(branches) == 0 {
		return "", errNoWorktreesFound
	}

	items := make([]pickerItem, 0, len(branches))
	for _, name := range branches {
		items = append(items, pickerItem{Label: name, Filter: name})
	}
	index, err := picker.Pick("Select worktree", items, 0)
	if err != nil {
		return "", err
	}
	return branches[index], nil
}
