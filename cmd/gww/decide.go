package main

type actionKind int

const (
	// actionReuse reports the path of an existing worktree; nothing is
	// mutated.
	actionReuse actionKind = iota
	// actionCreateFromLocal checks an existing local branch out into a
	// new worktree.
	actionCreateFromLocal
	// actionCreateFromRemote creates a local branch tracking RemoteRef
	// and checks it out into a new worktree.
	actionCreateFromRemote
	// actionCreateNew creates a brand-new local branch in a new
	// worktree.
	actionCreateNew
)

type checkoutAction struct {
	Kind      actionKind
	Path      string
	Branch    string
	RemoteRef string
}

// decideCheckout turns a resolved branch name into the single
// filesystem action the checkout flow will perform. Resolution order:
// existing worktree, local branch, remote branch (exact ref first,
// then stripped-name scan), brand-new branch. The plan callback keeps
// the decision pure; it is only invoked for Create actions.
func decideCheckout(branch string, worktrees []worktreeInfo, locals []string, remotes []string, plan func(branch string) (string, error)) (checkoutAction, error) {
	if wt, ok := worktreeForBranch(worktrees, branch); ok {
		return checkoutAction{Kind: actionReuse, Path: wt.Path, Branch: branch}, nil
	}

	for _, local := range locals {
		if local != branch {
			continue
		}
		path, err := plan(branch)
		if err != nil {
			return checkoutAction{}, err
		}
		return checkoutAction{Kind: actionCreateFromLocal, Path: path, Branch: branch}, nil
	}

	if remoteRef, ok := matchRemoteBranch(branch, remotes); ok {
		local := stripRemotePrefix(remoteRef)
		if wt, ok := worktreeForBranch(worktrees, local); ok {
			return checkoutAction{Kind: actionReuse, Path: wt.Path, Branch: local}, nil
		}
		path, err := plan(local)
		if err != nil {
			return checkoutAction{}, err
		}
		return checkoutAction{Kind: actionCreateFromRemote, Path: path, Branch: local, RemoteRef: remoteRef}, nil
	}

	path, err := plan(branch)
	if err != nil {
		return checkoutAction{}, err
	}
	return checkoutAction{Kind: actionCreateNew, Path: path, Branch: branch}, nil
}
