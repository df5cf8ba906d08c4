package main

import "testing"

func TestParseRefMetadata(t *testing.T) {
	output := "main\x1f1700000100\x1f2023-11-14T22:15:00+00:00\x1fAda\x1ffix the thing\n" +
		"origin/feat\x1f1700000200\x1f2023-11-14T22:16:40+00:00\x1fGrace\x1fadd feature\n"

	meta := parseRefMetadata(output)
	if len(meta) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(meta))
	}
	entry := meta["main"]
	if entry.TimestampUnix != 1700000100 {
		t.Fatalf("expected timestamp 1700000100, got %d", entry.TimestampUnix)
	}
	if entry.Summary.Author != "Ada" || entry.Summary.Subject != "fix the thing" {
		t.Fatalf("unexpected summary: %+v", entry.Summary)
	}
	if meta["origin/feat"].Summary.TimestampLabel != "2023-11-14T22:16:40+00:00" {
		t.Fatalf("unexpected label: %+v", meta["origin/feat"].Summary)
	}
}

func TestParseRefMetadataSparseLine(t *testing.T) {
	meta := parseRefMetadata("b\x1f1700000000")
	entry, ok := meta["b"]
	if !ok {
		t.Fatalf("expected entry for b, got %+v", meta)
	}
	if entry.TimestampUnix != 1700000000 {
		t.Fatalf("expected timestamp 1700000000, got %d", entry.TimestampUnix)
	}
	if entry.Summary.TimestampLabel != "" || entry.Summary.Author != "" || entry.Summary.Subject != "" {
		t.Fatalf("expected empty defaults for missing fields, got %+v", entry.Summary)
	}
}

func TestParseRefMetadataSkipsEmptyNames(t *testing.T) {
	meta := parseRefMetadata("\x1f1700000000\x1flabel\x1fauthor\x1fsubject\n\n  \n")
	if len(meta) != 0 {
		t.Fatalf("expected no entries, got %+v", meta)
	}
}

func TestParseRefMetadataBadTimestamp(t *testing.T) {
	meta := parseRefMetadata("b\x1fnot-a-number\x1flabel\x1fAda\x1fsubject")
	entry := meta["b"]
	if entry.TimestampUnix != 0 {
		t.Fatalf("expected timestamp 0 for bad value, got %d", entry.TimestampUnix)
	}
	if entry.Summary.Author != "Ada" {
		t.Fatalf("later fields must survive a bad timestamp, got %+v", entry.Summary)
	}
}

func TestParseRefMetadataSubjectWithSpaces(t *testing.T) {
	meta := parseRefMetadata("feature/x y\x1f1\x1flabel\x1fAda Lovelace\x1fsubject: with, punctuation")
	entry, ok := meta["feature/x y"]
	if !ok {
		t.Fatalf("ref name with spaces must be preserved, got %+v", meta)
	}
	if entry.Summary.Subject != "subject: with, punctuation" {
		t.Fatalf("unexpected subject %q", entry.Summary.Subject)
	}
}

func TestSummaryForFallsBackToPlaceholder(t *testing.T) {
	summary := summaryFor("missing", map[string]branchMeta{})
	if summary != placeholderSummary() {
		t.Fatalf("expected placeholder summary, got %+v", summary)
	}
}
