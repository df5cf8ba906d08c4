package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type scriptedPicker struct {
	index      int
	err        error
	calls      int
	gotTitle   string
	gotItems   []pickerItem
	gotDefault int
}

func (p *scriptedPicker) Pick(title string, items []pickerItem, defaultIndex int) (int, error) {
	p.calls++
	p.gotTitle = title
	p.gotItems = items
	p.gotDefault = defaultIndex
	if p.err != nil {
		return 0, p.err
	}
	return p.index, nil
}

type scriptedConfirmer struct {
	answer bool
	err    error
	calls  int
}

func (c *scriptedConfirmer) Confirm(title string, description string, def bool) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	return c.answer, nil
}

// newBareFixtureRepo initializes an empty repository with no remotes
// and no commits.
func newBareFixtureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return dir
}

// newFixtureRepo initializes a repository with one commit on master,
// a local branch "dev", remote-tracking refs origin/dev and
// origin/feat plus the origin/HEAD pointer, and an origin remote URL.
func newFixtureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@example.com:org/fixture-repo.git"},
	}); err != nil {
		t.Fatalf("create remote: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("fixture\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := wt.Add("README"); err != nil {
		t.Fatalf("add: %v", err)
	}
	sig := &object.Signature{Name: "Fixture Author", Email: "fixture@example.com", When: time.Unix(1700000000, 0)}
	hash, err := wt.Commit("initial commit", &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	refs := []string{
		"refs/heads/dev",
		"refs/remotes/origin/dev",
		"refs/remotes/origin/feat",
	}
	for _, name := range refs {
		ref := plumbing.NewHashReference(plumbing.ReferenceName(name), hash)
		if err := repo.Storer.SetReference(ref); err != nil {
			t.Fatalf("set ref %s: %v", name, err)
		}
	}
	head := plumbing.NewSymbolicReference("refs/remotes/origin/HEAD", "refs/remotes/origin/master")
	if err := repo.Storer.SetReference(head); err != nil {
		t.Fatalf("set origin/HEAD: %v", err)
	}

	return dir
}
