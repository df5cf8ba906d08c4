package main

import "fmt"

func runList() error {
	out, err := gitOutput("", "worktree", "list")
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
