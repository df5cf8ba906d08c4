package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"", "anything", true},
		{"feat", "feature-x", true},
		{"ftx", "feature-x", true},
		{"FT", "feature-x", true},
		{"xz", "feature-x", false},
		{"feature-xy", "feature-x", false},
	}
	for _, c := range cases {
		if got := fuzzyMatch(c.pattern, c.value); got != c.want {
			t.Fatalf("fuzzyMatch(%q, %q) = %v, want %v", c.pattern, c.value, got, c.want)
		}
	}
}

func TestFilterItems(t *testing.T) {
	items := []pickerItem{
		{Label: "row a", Filter: "main"},
		{Label: "row b", Filter: "feature-x"},
		{Label: "row c", Filter: "origin/feature-y"},
	}
	matches := filterItems(items, "feat")
	if len(matches) != 2 || matches[0] != 1 || matches[1] != 2 {
		t.Fatalf("expected matches [1 2], got %v", matches)
	}
}

func TestPickerModelDefaultCursor(t *testing.T) {
	items := []pickerItem{{Filter: "a"}, {Filter: "b"}, {Filter: "c"}}
	m := newPickerModel("Select branch", items, 2)
	if m.cursor != 2 {
		t.Fatalf("expected cursor at default index 2, got %d", m.cursor)
	}
	m = newPickerModel("Select branch", items, 99)
	if m.cursor != 0 {
		t.Fatalf("out-of-range default must fall back to 0, got %d", m.cursor)
	}
}

func TestPickerModelEscCancels(t *testing.T) {
	m := newPickerModel("Select branch", []pickerItem{{Filter: "a"}}, 0)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pm := updated.(pickerModel)
	if !pm.cancelled {
		t.Fatalf("expected esc to cancel")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestPickerModelEnterSelects(t *testing.T) {
	items := []pickerItem{{Filter: "a"}, {Filter: "b"}}
	m := newPickerModel("Select branch", items, 0)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ = updated.(pickerModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := updated.(pickerModel)
	if pm.chosen != 1 {
		t.Fatalf("expected selection index 1, got %d", pm.chosen)
	}
}

func TestPickerModelTypingFilters(t *testing.T) {
	items := []pickerItem{{Filter: "main"}, {Filter: "feature-x"}}
	m := newPickerModel("Select branch", items, 1)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	pm := updated.(pickerModel)
	if len(pm.matches) != 1 || pm.matches[0] != 1 {
		t.Fatalf("expected only feature-x to match, got %v", pm.matches)
	}
	if pm.cursor != 0 {
		t.Fatalf("filtering must reset the cursor, got %d", pm.cursor)
	}

	updated, _ = pm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm = updated.(pickerModel)
	if pm.chosen != 1 {
		t.Fatalf("enter must select the underlying item index, got %d", pm.chosen)
	}
}

func TestPickerModelEnterWithNoMatches(t *testing.T) {
	items := []pickerItem{{Filter: "main"}}
	m := newPickerModel("Select branch", items, 0)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	pm := updated.(pickerModel)
	if len(pm.matches) != 0 {
		t.Fatalf("expected no matches, got %v", pm.matches)
	}
	updated, _ = pm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm = updated.(pickerModel)
	if pm.chosen != -1 {
		t.Fatalf("enter with no matches selects nothing, got %d", pm.chosen)
	}
}
