package main

import (
	"fmt"
	"time"
)

// runTimechooser builds the full candidate list once and reports how
// long it took. Kept hidden; useful when a repository with thousands
// of refs makes the picker feel slow.
func runTimechooser() error {
	repoRoot, err := repoRootForDir("")
	if err != nil {
		return err
	}

	start := time.Now()
	state, err := gatherBranchState(repoRoot)
	if err != nil {
		return err
	}
	candidates := buildBranchCandidates(state.Worktrees, state.Locals, state.Remotes, state.Meta, state.Current)
	elapsed := time.Since(start)

	fmt.Printf("Built %d branch entries in %s\n", len(candidates), elapsed.Round(10*time.Microsecond))
	return nil
}
