package main

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errSelectionCancelled = errors.New("selection cancelled")
var errNoBranchesFound = errors.New("no branches found")
var errNoWorktreesFound = errors.New("no worktrees found")

// pickerItem is one selectable row: Label is what the user sees,
// Filter is the plain text the fuzzy filter matches against.
type pickerItem struct {
	Label  string
	Filter string
}

// branchPicker abstracts the interactive selection so the command
// flows can be driven by a scripted implementation in tests.
type branchPicker interface {
	Pick(title string, items []pickerItem, defaultIndex int) (int, error)
}

type fuzzyPicker struct{}

func newFuzzyPicker() branchPicker {
	return fuzzyPicker{}
}

// Pick renders on stderr so the GWW_CD line on stdout stays clean for
// the autocd shell function.
func (fuzzyPicker) Pick(title string, items []pickerItem, defaultIndex int) (int, error) {
	program := tea.NewProgram(newPickerModel(title, items, defaultIndex), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(pickerModel)
	if !ok || m.cancelled || m.chosen < 0 {
		return 0, errSelectionCancelled
	}
	return m.chosen, nil
}

const pickerVisibleRows = 12

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true)
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

type pickerModel struct {
	title     string
	items     []pickerItem
	filter    textinput.Model
	matches   []int
	cursor    int
	chosen    int
	cancelled bool
}

func newPickerModel(title string, items []pickerItem, defaultIndex int) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.Focus()

	matches := make([]int, len(items))
	for i := range items {
		matches[i] = i
	}
	cursor := 0
	if defaultIndex >= 0 && defaultIndex < len(items) {
		cursor = defaultIndex
	}

	return pickerModel{
		title:   title,
		items:   items,
		filter:  ti,
		matches: matches,
		cursor:  cursor,
		chosen:  -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.chosen = m.matches[m.cursor]
		}
		return m, tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.matches = filterItems(m.items, m.filter.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	start := 0
	if m.cursor >= pickerVisibleRows {
		start = m.cursor - pickerVisibleRows + 1
	}
	end := start + pickerVisibleRows
	if end > len(m.matches) {
		end = len(m.matches)
	}

	for i := start; i < end; i++ {
		item := m.items[m.matches[i]]
		if i == m.cursor {
			b.WriteString(pickerCursorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(item.Label)
		b.WriteString("\n")
	}
	if len(m.matches) == 0 {
		b.WriteString("  (no match)\n")
	}
	return b.String()
}

func filterItems(items []pickerItem, pattern string) []int {
	matches := make([]int, 0, len(items))
	for i, item := range items {
		if fuzzyMatch(pattern, item.Filter) {
			matches = append(matches, i)
		}
	}
	return matches
}

// fuzzyMatch reports whether pattern is a case-insensitive subsequence
// of value. An empty pattern matches everything.
func fuzzyMatch(pattern string, value string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return true
	}
	value = strings.ToLower(value)
	want := []rune(pattern)
	idx := 0
	for _, r := range value {
		if want[idx] == r {
			idx++
			if idx == len(want) {
				return true
			}
		}
	}
	return false
}
