package main

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// confirmer abstracts the yes/no prompt so the checkout flow can be
// driven by a scripted implementation in tests.
type confirmer interface {
	Confirm(title string, description string, def bool) (bool, error)
}

type huhConfirmer struct{}

func newHuhConfirmer() confirmer {
	return huhConfirmer{}
}

func (huhConfirmer) Confirm(title string, description string, def bool) (bool, error) {
	result := def
	form := newConfirmForm(title, description, &result)
	if err := form.Run(); err != nil {
		return false, err
	}
	return result, nil
}

func gwwHuhTheme() *huh.Theme {
	t := *huh.ThemeCharm()
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(lipgloss.Color("6"))
	t.Focused.Next = t.Focused.FocusedButton
	return &t
}

func newConfirmForm(title string, description string, result *bool) *huh.Form {
	confirm := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(result)

	// Render on stderr; stdout carries the GWW_CD contract line.
	return huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(gwwHuhTheme()).
		WithShowHelp(false).
		WithOutput(os.Stderr)
}
