package hevo

import (
	"fmt"
	"strings"
)

// listingHeader opens a markdown listing, e.g. "Found 4 pipelines:".
func listingHeader(total int, noun string) []string {
	return []string{fmt.Sprintf("Found %d %s:", total, noun), ""}
}

// tableRows renders a markdown pipe table.
func tableRows(headers []string, rows [][]string) []string {
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "| "+strings.Join(headers, " | ")+" |")

	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", len(h)+2)
	}
	lines = append(lines, "|"+strings.Join(separators, "|")+"|")

	for _, row := range rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return lines
}

// truncationNote appends the "show more" hint when a listing was cut
// off at limit entries.
func truncationNote(limit, total int, noun string) []string {
	if total <= limit {
		return nil
	}
	return []string{
		"",
		fmt.Sprintf("*Showing %d of %d %s. Say 'show more' or 'show all' to see more.*", limit, total, noun),
	}
}

// renderListing builds a full markdown listing of rows capped at limit.
func renderListing(noun string, limit int, headers []string, rows [][]string) string {
	total := len(rows)
	shown := rows
	if total > limit {
		shown = rows[:limit]
	}

	lines := listingHeader(total, noun)
	lines = append(lines, tableRows(headers, shown)...)
	lines = append(lines, truncationNote(limit, total, noun)...)
	return strings.Join(lines, "\n")
}

// formatCount renders an integer with thousands separators.
func formatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
