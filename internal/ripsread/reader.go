// Package ripsread turns a raw RIPS extract file into a positional row table:
// legacy-encoding decode, logical-line repair, and delimiter resolution.
package ripsread

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const maxLineBytes = 1 << 20

// Stats reports what happened to one file on its way to a row table.
type Stats struct {
	LinesRead     int
	LinesRepaired int
	RowsOut       int
	RowsDropped   int
	Delimiter     string
}

// ReadFile reads, repairs, and tokenizes one RIPS extract. expectedCols is
// the schema width of the file's record type, used by the line repairer to
// detect records wrapped across two physical lines.
func ReadFile(path string, expectedCols int) ([][]string, *Stats, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, nil, err
	}
	stats := &Stats{LinesRead: len(lines)}

	repaired := RepairLines(lines, expectedCols, stats)
	table := Tokenize(repaired, stats)

	stats.RowsOut = len(table)
	return table, stats, nil
}

// ReadLines reads the physical lines of a RIPS extract, decoding the legacy
// single-byte encoding the files are produced in.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rips file: %w", err)
	}
	defer f.Close()

	dec := transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rips file: %w", err)
	}
	return lines, nil
}

// clean strips quote characters and surrounding whitespace from a physical
// line before any field counting or tokenizing.
func clean(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, `"`, ""))
}

// estimateFields counts delimiters to estimate the field count of a line,
// preferring commas and falling back to semicolons when no comma is present.
func estimateFields(line string) int {
	if strings.Contains(line, ",") {
		return strings.Count(line, ",") + 1
	}
	return strings.Count(line, ";") + 1
}

// RepairLines reconstructs logical records from physical lines. When a line
// estimates fewer fields than the schema expects, the next physical line is
// concatenated onto it and the cursor advances past both; the producing
// system wraps a record mid-field onto exactly one extra line. Records broken
// across more than two lines are not repaired and propagate as malformed
// rows. Already well-formed input passes through untouched.
func RepairLines(lines []string, expectedCols int, stats *Stats) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := clean(lines[i])
		if estimateFields(cur) < expectedCols && i+1 < len(lines) {
			cur += clean(lines[i+1])
			i++
			if stats != nil {
				stats.LinesRepaired++
			}
		}
		out = append(out, cur)
	}
	return out
}
