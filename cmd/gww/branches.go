package main

import "strings"

func listLocalBranches(repoRoot string) ([]string, error) {
	out, err := gitOutput(repoRoot, "for-each-ref", "refs/heads", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return parseBranchLines(out), nil
}

// listRemoteBranches returns remote-tracking short names. Each
// remote's symbolic HEAD pointer is excluded; entries without a slash
// cannot be remote-tracking names and are dropped as well.
func listRemoteBranches(repoRoot string) ([]string, error) {
	out, err := gitOutput(repoRoot, "for-each-ref", "refs/remotes", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	branches := make([]string, 0, 16)
	for _, name := range parseBranchLines(out) {
		if !strings.Contains(name, "/") || strings.HasSuffix(name, "/HEAD") {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// currentBranch returns the checked-out branch of the invocation
// directory, or an empty string for a detached HEAD.
func currentBranch(repoRoot string) string {
	out, err := gitOutput(repoRoot, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(out)
	if name == "HEAD" {
		return ""
	}
	return name
}

func localBranchExists(repoRoot string, branch string) bool {
	_, err := gitOutput(repoRoot, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

func remoteBranchExists(repoRoot string, branch string) bool {
	_, err := gitOutput(repoRoot, "show-ref", "--verify", "--quiet", "refs/remotes/"+branch)
	return err == nil
}

func parseBranchLines(output string) []string {
	lines := strings.Split(output, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		value := strings.TrimSpace(line)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}
