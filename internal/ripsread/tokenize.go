package ripsread

import (
	"regexp"
	"strings"
)

var anyDelim = regexp.MustCompile(`[,;]`)

// Tokenize resolves the file's delimiter and splits repaired lines into
// positional field rows. The whole file is tried comma-separated first, then
// semicolon-separated; when neither delimiter is consistent, a mixed pass
// accepts either delimiter per line and drops the lines that carry no
// delimiter at all. Blank lines are skipped in every mode.
func Tokenize(lines []string, stats *Stats) [][]string {
	if rows, ok := splitAll(lines, ","); ok {
		if stats != nil {
			stats.Delimiter = ","
		}
		return rows
	}
	if rows, ok := splitAll(lines, ";"); ok {
		if stats != nil {
			stats.Delimiter = ";"
		}
		return rows
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !anyDelim.MatchString(line) {
			if stats != nil {
				stats.RowsDropped++
			}
			continue
		}
		rows = append(rows, anyDelim.Split(line, -1))
	}
	if stats != nil {
		stats.Delimiter = "mixed"
	}
	return rows
}

// splitAll splits every non-blank line on sep. ok is false when any line
// lacks the delimiter, signaling the caller to fall back.
func splitAll(lines []string, sep string) ([][]string, bool) {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !strings.Contains(line, sep) {
			return nil, false
		}
		rows = append(rows, strings.Split(line, sep))
	}
	return rows, true
}
