package main

import (
	"sort"
	"strings"
)

type branchSource int

const (
	sourceWorktree branchSource = iota
	sourceLocal
	sourceRemote
)

// branchCandidate is one selectable row of the checkout picker. The
// list is rebuilt from live repository state on every invocation and
// never contains the same display name twice.
type branchCandidate struct {
	Name      string
	Source    branchSource
	Summary   branchSummary
	IsCurrent bool
}

// buildBranchCandidates merges the three namespaces into one ordered
// list: worktree-backed branches first (current branch hoisted to the
// top), then local branches without a worktree, then remote branches
// whose stripped name is neither a worktree branch nor a local one.
func buildBranchCandidates(worktrees []worktreeInfo, locals []string, remotes []string, meta map[string]branchMeta, current string) []branchCandidate {
	worktreeSet := make(map[string]bool)
	for _, name := range worktreeBranchNames(worktrees) {
		worktreeSet[name] = true
	}
	localSet := make(map[string]bool, len(locals))
	for _, name := range locals {
		localSet[name] = true
	}

	worktreeNames := sortByRecent(worktreeBranchNames(worktrees), meta)
	if current != "" {
		for i, name := range worktreeNames {
			if name == current {
				worktreeNames = append(worktreeNames[:i], worktreeNames[i+1:]...)
				worktreeNames = append([]string{current}, worktreeNames...)
				break
			}
		}
	}

	candidates := make([]branchCandidate, 0, len(worktreeNames)+len(locals)+len(remotes))
	for _, name := range worktreeNames {
		candidates = append(candidates, branchCandidate{
			Name:      name,
			Source:    sourceWorktree,
			Summary:   summaryFor(name, meta),
			IsCurrent: name == current && current != "",
		})
	}
	for _, name := range sortByRecent(locals, meta) {
		if worktreeSet[name] {
			continue
		}
		candidates = append(candidates, branchCandidate{
			Name:      name,
			Source:    sourceLocal,
			Summary:   summaryFor(name, meta),
			IsCurrent: name == current && current != "",
		})
	}
	for _, name := range sortByRecent(remotes, meta) {
		stripped := stripRemotePrefix(name)
		if worktreeSet[stripped] || localSet[stripped] {
			continue
		}
		candidates = append(candidates, branchCandidate{
			Name:      name,
			Source:    sourceRemote,
			Summary:   summaryFor(name, meta),
			IsCurrent: stripped == current && current != "",
		})
	}
	return candidates
}

// sortByRecent de-duplicates names and orders them by descending
// commit timestamp, ties broken by ascending name. Names absent from
// the metadata map sort as timestamp 0, i.e. last.
func sortByRecent(names []string, meta map[string]branchMeta) []string {
	unique := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}

	sort.Slice(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		aTS := meta[a].TimestampUnix
		bTS := meta[b].TimestampUnix
		if aTS != bTS {
			return aTS > bTS
		}
		return a < b
	})
	return unique
}

// stripRemotePrefix drops the leading remote-alias segment of a
// remote-tracking short name; names without a slash pass through.
func stripRemotePrefix(branch string) string {
	if _, rest, ok := strings.Cut(branch, "/"); ok {
		return rest
	}
	return branch
}

// matchRemoteBranch resolves a name against the remote-tracking set:
// an exact ref match wins, otherwise the first remote whose stripped
// name equals the argument.
func matchRemoteBranch(branch string, remotes []string) (string, bool) {
	for _, remote := range remotes {
		if remote == branch {
			return remote, true
		}
	}
	for _, remote := range remotes {
		if stripRemotePrefix(remote) == branch {
			return remote, true
		}
	}
	return "", false
}
