package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRootCommand(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "gww",
		Short:         "Git worktree wrapper",
		Version:       currentVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(os.Stderr, "No command provided; defaulting to `checkout`. Use `gww --help` for options.")
			return runCheckout("", false, newFuzzyPicker(), newHuhConfirmer())
		},
	}

	root.AddCommand(
		newCheckoutCommand(),
		newListCommand(),
		newRemoveCommand(),
		newAutocdCommand(),
		newTimechooserCommand(),
	)

	if len(args) > 1 {
		root.SetArgs(args[1:])
	}
	return root
}

func newCheckoutCommand() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Check out a branch in its own worktree",
		Long: "Resolves a branch against existing worktrees, local branches and\n" +
			"remote-tracking branches, creating the worktree when needed.\n\n" +
			"Without an argument an interactive picker is shown.",
		Example: strings.Join([]string{
			"  gww checkout feature/auth-flow",
			"  gww co origin/bugfix/login-timeout",
			"  gww checkout -b feature/new-api",
		}, "\n"),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError(cmd, "too many arguments; provide at most one branch name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}
			return runCheckout(branch, create, newFuzzyPicker(), newHuhConfirmer())
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch without confirmation if it does not exist")
	cmd.ValidArgsFunction = checkoutBranchCompletion
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList()
		},
	}
}

func newRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [branch]",
		Aliases: []string{"rm"},
		Short:   "Remove the worktree of a branch",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError(cmd, "too many arguments; provide at most one branch name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}
			return runRemove(branch, newFuzzyPicker())
		},
	}
	cmd.ValidArgsFunction = removeBranchCompletion
	return cmd
}

func newAutocdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "autocd",
		Short: "Print the shell function that follows gww into the worktree",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runAutocd()
		},
	}
}

func newTimechooserCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "timechooser",
		Short:  "Time the candidate-list build",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTimechooser()
		},
	}
}

func usageError(cmd *cobra.Command, message string) error {
	return fmt.Errorf("%s\n\n%s", message, strings.TrimSpace(cmd.UsageString()))
}
