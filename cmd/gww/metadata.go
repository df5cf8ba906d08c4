package main

import (
	"strconv"
	"strings"
)

// One for-each-ref invocation covers both the local and the
// remote-tracking namespace; fields are separated by the ASCII unit
// separator so ref names and subjects containing spaces stay intact.
const refMetadataFormat = "%(refname:short)%x1f%(committerdate:unix)%x1f%(committerdate:iso8601-strict)%x1f%(authorname)%x1f%(subject)"

const refFieldSeparator = "\x1f"

type branchSummary struct {
	TimestampLabel string
	Author         string
	Subject        string
}

type branchMeta struct {
	TimestampUnix int64
	Summary       branchSummary
}

func batchBranchMetadata(repoRoot string) (map[string]branchMeta, error) {
	out, err := gitOutput(repoRoot, "for-each-ref", "refs/heads", "refs/remotes", "--format="+refMetadataFormat)
	if err != nil {
		return nil, err
	}
	return parseRefMetadata(out), nil
}

// parseRefMetadata is lenient: lines with an empty name are skipped
// and missing trailing fields degrade to zero values instead of
// failing the whole batch.
func parseRefMetadata(output string) map[string]branchMeta {
	meta := make(map[string]branchMeta)
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, refFieldSeparator)
		name := strings.TrimSpace(fields[0])
		if name == "" {
			continue
		}
		entry := branchMeta{}
		if len(fields) > 1 {
			if ts, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64); err == nil {
				entry.TimestampUnix = ts
			}
		}
		if len(fields) > 2 {
			entry.Summary.TimestampLabel = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			entry.Summary.Author = strings.TrimSpace(fields[3])
		}
		if len(fields) > 4 {
			entry.Summary.Subject = strings.TrimSpace(fields[4])
		}
		meta[name] = entry
	}
	return meta
}

func placeholderSummary() branchSummary {
	return branchSummary{
		TimestampLabel: "unknown time",
		Author:         "unknown author",
		Subject:        "unknown subject",
	}
}

func summaryFor(name string, meta map[string]branchMeta) branchSummary {
	if entry, ok := meta[name]; ok {
		return entry.Summary
	}
	return placeholderSummary()
}

// formatRefMetadataLine renders the emulated for-each-ref output for
// one ref in the refMetadataFormat layout.
func formatRefMetadataLine(entry refEntry) string {
	fields := []string{entry.ShortName, "0", "", "", ""}
	if entry.Commit != nil {
		when := entry.Commit.Committer.When
		fields[1] = strconv.FormatInt(when.Unix(), 10)
		fields[2] = when.Format("2006-01-02T15:04:05-07:00")
		fields[3] = entry.Commit.Author.Name
		subject := entry.Commit.Message
		if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
			subject = subject[:idx]
		}
		fields[4] = strings.TrimSpace(subject)
	}
	return strings.Join(fields, refFieldSeparator)
}
