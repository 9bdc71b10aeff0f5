package tableparser

import (
	"regexp"
	"strings"
)

var separatorPattern = regexp.MustCompile(`^[\s\-\*=+]+$`)

// ParseTable parses aligned-column text output, as printed by the fab cli,
// into one map per data row keyed by the lower-cased header names. Column
// boundaries are taken from the header row positions, so values may contain
// single spaces. Separator rows (dashes, asterisks) and blank lines are
// skipped.
func ParseTable(output string) []map[string]string {
	lines := strings.Split(strings.ReplaceAll(output, "\r", ""), "\n")

	headerIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" || separatorPattern.MatchString(line) {
			continue
		}
		headerIndex = i
		break
	}
	if headerIndex == -1 {
		return []map[string]string{}
	}

	offsets := columnStarts(lines[headerIndex])
	headers := make([]string, 0, len(offsets))
	for i := range offsets {
		headers = append(headers, strings.ToLower(sliceColumn(lines[headerIndex], offsets, i)))
	}

	rows := []map[string]string{}
	for _, line := range lines[headerIndex+1:] {
		if strings.TrimSpace(line) == "" || separatorPattern.MatchString(line) {
			continue
		}
		row := map[string]string{}
		for i, header := range headers {
			row[header] = sliceColumn(line, offsets, i)
		}
		rows = append(rows, row)
	}
	return rows
}

// sliceColumn extracts and trims column i of a row given the header offsets.
func sliceColumn(line string, offsets []int, i int) string {
	start := offsets[i]
	if start >= len(line) {
		return ""
	}
	end := len(line)
	if i+1 < len(offsets) && offsets[i+1] < end {
		end = offsets[i+1]
	}
	return strings.TrimSpace(line[start:end])
}

// columnStarts returns the offset of each column in a row, treating runs of
// two or more spaces as column breaks.
func columnStarts(line string) []int {
	starts := []int{}
	gapLen := 2
	for i, r := range line {
		if r == ' ' || r == '\t' {
			gapLen++
			continue
		}
		if gapLen >= 2 {
			starts = append(starts, i)
		}
		gapLen = 0
	}
	return starts
}
