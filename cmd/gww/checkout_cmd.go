package main

import (
	"fmt"
)

// cdPrefix marks the resolved worktree path on stdout. The autocd
// shell function greps for it; the format is a stable contract.
const cdPrefix = "GWW_CD:"

func emitCD(path string) {
	fmt.Printf("%s%s\n", cdPrefix, path)
}

// branchState is the per-invocation snapshot of the three branch
// namespaces plus the batched ref metadata.
type branchState struct {
	Worktrees []worktreeInfo
	Locals    []string
	Remotes   []string
	Meta      map[string]branchMeta
	Current   string
}

func gatherBranchState(repoRoot string) (branchState, error) {
	worktrees, err := listWorktreesInfo(repoRoot)
	if err != nil {
		return branchState{}, err
	}
	locals, err := listLocalBranches(repoRoot)
	if err != nil {
		return branchState{}, err
	}
	remotes, err := listRemoteBranches(repoRoot)
	if err != nil {
		return branchState{}, err
	}
	meta, err := batchBranchMetadata(repoRoot)
	if err != nil {
		return branchState{}, err
	}
	return branchState{
		Worktrees: worktrees,
		Locals:    locals,
		Remotes:   remotes,
		Meta:      meta,
		Current:   currentBranch(repoRoot),
	}, nil
}

func runCheckout(branch string, create bool, picker branchPicker, confirm confirmer) error {
	repoRoot, err := repoRootForDir("")
	if err != nil {
		return err
	}
	cfg := loadConfigFromEnv()

	state, err := gatherBranchState(repoRoot)
	if err != nil {
		return err
	}

	selected := branch
	if selected == "" {
		candidates := buildBranchCandidates(state.Worktrees, state.Locals, state.Remotes, state.Meta, state.Current)
		selected, err = selectBranch(candidates, cfg.ColorEnabled, picker)
		if err != nil {
			return err
		}
	}

	plan := func(name string) (string, error) {
		return planWorktreePath(cfg, repoRoot, name)
	}
	action, err := decideCheckout(selected, state.Worktrees, state.Locals, state.Remotes, plan)
	if err != nil {
		return err
	}

	if action.Kind == actionReuse {
		emitCD(action.Path)
		return nil
	}

	if err := ensureBranchOrPrompt(repoRoot, action.Branch, create, action.RemoteRef, confirm); err != nil {
		return err
	}
	if err := gitWorktreeAdd(repoRoot, action.Path, action.Branch, action.RemoteRef); err != nil {
		return err
	}
	emitCD(action.Path)
	return nil
}

func selectBranch(candidates []branchCandidate, colored bool, picker branchPicker) (string, error) {
	if len(candidates) == 0 {
		return "", errNoBranchesFound
	}
	index, err := picker.Pick("Select branch", candidatePickerItems(candidates, colored), 0)
	if err != nil {
		return "", err
	}
	return candidates[index].Name, nil
}

// ensureBranchOrPrompt gates branch creation: an existing local branch
// (or matched remote ref) needs no confirmation, and the create flag
// skips the prompt. Declining is a hard failure.
func ensureBranchOrPrompt(repoRoot string, branch string, create bool, remoteRef string, confirm confirmer) error {
	if localBranchExists(repoRoot, branch) {
		return nil
	}
	if remoteRef != "" && remoteBranchExists(repoRoot, remoteRef) {
		return nil
	}
	if create {
		return nil
	}

	shouldCreate, err := confirm.Confirm(fmt.Sprintf("Branch %q does not exist. Create it?", branch), "", true)
	if err != nil {
		return err
	}
	if !shouldCreate {
		return fmt.Errorf("branch %q does not exist", branch)
	}
	return nil
}
