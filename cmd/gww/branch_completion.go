package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func checkoutBranchCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeBranchSuggestions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func removeBranchCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	repoRoot, err := repoRootForDir("")
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	worktrees, err := listWorktreesInfo(repoRoot)
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	names := worktreeBranchNames(worktrees)
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		if matchesCompletionPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeBranchSuggestions offers worktree-backed branches first,
// then locals, then remote-tracking names, de-duplicated in that
// order.
func completeBranchSuggestions(toComplete string) []string {
	repoRoot, err := repoRootForDir("")
	if err != nil {
		return []string{}
	}

	seen := map[string]bool{}
	out := make([]string, 0, 32)
	appendMatching := func(values []string) {
		for _, value := range values {
			v := strings.TrimSpace(value)
			if v == "" || seen[v] {
				continue
			}
			if !matchesCompletionPrefix(v, toComplete) {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}

	worktrees, err := listWorktreesInfo(repoRoot)
	if err == nil {
		appendMatching(worktreeBranchNames(worktrees))
	}
	if locals, err := listLocalBranches(repoRoot); err == nil {
		appendMatching(locals)
	}
	if remotes, err := listRemoteBranches(repoRoot); err == nil {
		appendMatching(remotes)
	}
	return out
}

func matchesCompletionPrefix(value string, prefix string) bool {
	if strings.TrimSpace(prefix) == "" {
		return true
	}
	valueLower := strings.ToLower(strings.TrimSpace(value))
	prefixLower := strings.ToLower(strings.TrimSpace(prefix))
	return strings.HasPrefix(valueLower, prefixLower)
}
