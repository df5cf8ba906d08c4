package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// gogitCommandOutput emulates the read-side git commands gww issues.
// The boolean reports whether the command was handled; unhandled
// commands are run through the git binary by the caller.
func gogitCommandOutput(dir string, args ...string) (string, bool, error) {
	if len(args) == 0 {
		return "", false, nil
	}
	if isLinkedWorktreeDir(dir) {
		// go-git linked-worktree support is incomplete for command
		// emulation; use the real git binary in those directories.
		return "", false, nil
	}

	switch args[0] {
	case "worktree":
		// go-git does not support full linked-worktree lifecycle parity.
		return "", false, nil
	case "rev-parse":
		return gogitRevParse(dir, args[1:])
	case "show-ref":
		return gogitShowRef(dir, args[1:])
	case "remote":
		return gogitRemote(dir, args[1:])
	case "for-each-ref":
		return gogitForEachRef(dir, args[1:])
	default:
		return "", false, nil
	}
}

func isLinkedWorktreeDir(dir string) bool {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			return false
		}
	}
	dotGit := filepath.Join(dir, ".git")
	info, err := os.Stat(dotGit)
	if err != nil || info.IsDir() {
		return false
	}
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), "gitdir:")
}

func openRepo(dir string) (*git.Repository, error) {
	repoRoot, err := repoRootForDir(dir)
	if err != nil {
		return nil, err
	}
	return git.PlainOpenWithOptions(repoRoot, &git.PlainOpenOptions{DetectDotGit: true})
}

func gogitRevParse(dir string, args []string) (string, bool, error) {
	if len(args) == 1 && args[0] == "--show-toplevel" {
		root, err := repoRootForDir(dir)
		return root + "\n", true, err
	}
	if len(args) == 2 && args[0] == "--abbrev-ref" && args[1] == "HEAD" {
		repo, err := openRepo(dir)
		if err != nil {
			return "", true, err
		}
		head, err := repo.Head()
		if err != nil {
			return "", true, err
		}
		if !head.Name().IsBranch() {
			return "HEAD\n", true, nil
		}
		return head.Name().Short() + "\n", true, nil
	}
	return "", false, nil
}

func gogitShowRef(dir string, args []string) (string, bool, error) {
	quiet := false
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--quiet" {
			quiet = true
			continue
		}
		rest = append(rest, arg)
	}
	if len(rest) != 2 || rest[0] != "--verify" {
		return "", false, nil
	}
	repo, err := openRepo(dir)
	if err != nil {
		return "", true, err
	}
	name := strings.TrimSpace(rest[1])
	ref, err := repo.Reference(plumbing.ReferenceName(name), true)
	if err != nil {
		return "", true, err
	}
	if quiet {
		return "", true, nil
	}
	return fmt.Sprintf("%s %s\n", ref.Hash(), name), true, nil
}

func gogitRemote(dir string, args []string) (string, bool, error) {
	if len(args) != 2 || args[0] != "get-url" {
		return "", false, nil
	}
	repo, err := openRepo(dir)
	if err != nil {
		return "", true, err
	}
	remote, err := repo.Remote(args[1])
	if err != nil {
		return "", true, err
	}
	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return "", true, errors.New("remote has no URL")
	}
	return strings.TrimSpace(cfg.URLs[0]) + "\n", true, nil
}

type refEntry struct {
	FullName  string
	ShortName string
	Commit    *object.Commit
}

// gogitForEachRef handles the two shapes the catalog issues: a plain
// short-name listing and the unit-separated metadata batch. Anything
// else falls through to the binary.
func gogitForEachRef(dir string, args []string) (string, bool, error) {
	format := ""
	prefixes := make([]string, 0, 2)
	for _, arg := range args {
		if value, ok := strings.CutPrefix(arg, "--format="); ok {
			format = value
			continue
		}
		if strings.HasPrefix(arg, "--") {
			return "", false, nil
		}
		prefixes = append(prefixes, strings.TrimSpace(arg))
	}
	if len(prefixes) == 0 {
		return "", false, nil
	}
	if format != "%(refname:short)" && format != refMetadataFormat {
		return "", false, nil
	}

	repo, err := openRepo(dir)
	if err != nil {
		return "", true, err
	}
	iter, err := repo.References()
	if err != nil {
		return "", true, err
	}
	defer iter.Close()

	entries := make([]refEntry, 0, 32)
	_ = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !matchesAnyRefPrefix(name, prefixes) {
			return nil
		}
		entry := refEntry{FullName: name, ShortName: shortRefName(name)}
		if ref.Type() == plumbing.HashReference {
			if commit, err := commitForHash(repo, ref.Hash()); err == nil {
				entry.Commit = commit
			}
		}
		entries = append(entries, entry)
		return nil
	})

	// git for-each-ref default order: ascending full refname.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FullName < entries[j].FullName
	})

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if format == "%(refname:short)" {
			lines = append(lines, entry.ShortName)
			continue
		}
		lines = append(lines, formatRefMetadataLine(entry))
	}
	if len(lines) == 0 {
		return "", true, nil
	}
	return strings.Join(lines, "\n") + "\n", true, nil
}

func matchesAnyRefPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if name == prefix || strings.HasPrefix(name, prefix+"/") {
			return true
		}
	}
	return false
}

func shortRefName(name string) string {
	short := strings.TrimPrefix(name, "refs/heads/")
	short = strings.TrimPrefix(short, "refs/remotes/")
	return short
}

func commitForHash(repo *git.Repository, hash plumbing.Hash) (*object.Commit, error) {
	if commit, err := repo.CommitObject(hash); err == nil {
		return commit, nil
	}
	tagObj, err := repo.TagObject(hash)
	if err != nil {
		return nil, err
	}
	return resolveTagToCommit(repo, tagObj)
}

func resolveTagToCommit(repo *git.Repository, tagObj *object.Tag) (*object.Commit, error) {
	target, err := repo.Object(plumbing.AnyObject, tagObj.Target)
	if err != nil {
		return nil, err
	}
	switch obj := target.(type) {
	case *object.Commit:
		return obj, nil
	case *object.Tag:
		return resolveTagToCommit(repo, obj)
	default:
		return nil, errors.New("tag does not resolve to commit")
	}
}
