// Package markdown holds post-processing for generated markdown.
package markdown

import (
	"regexp"
	"strings"
)

// tableColumns is the fixed width used when rebuilding a collapsed table
const tableColumns = 3

// tableBlock matches runs of consecutive pipe-delimited lines
var tableBlock = regexp.MustCompile(`\|[^\n]+\|(?:\s*\|[^\n]+\|)*`)

// RepairTables rewrites single-line pseudo tables into header, separator and
// data rows. It is a best-effort normalizer, not a table validator:
//
//   - blocks spanning two or more lines are left untouched, even when they lack
//     a separator row
//   - single-line blocks with fewer than three cells are left untouched
//   - cells are laid out in a fixed three column grid, so tables whose natural
//     width differs come out misaligned; the last data row is padded with empty
//     cells
func RepairTables(text string) string {
	return tableBlock.ReplaceAllStringFunc(text, repairBlock)
}

// repairBlock rebuilds a single table block, or returns it unchanged
func repairBlock(block string) string {
	if strings.Contains(block, "\n") {
		return block
	}

	var cells []string
	for _, cell := range strings.Split(block, "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}

	if len(cells) < tableColumns {
		return block
	}

	separator := make([]string, tableColumns)
	for i := range separator {
		separator[i] = "---"
	}

	rows := []string{
		formatRow(cells[:tableColumns]),
		formatRow(separator),
	}

	for start := tableColumns; start < len(cells); start += tableColumns {
		row := make([]string, tableColumns)
		copy(row, cells[start:min(start+tableColumns, len(cells))])
		rows = append(rows, formatRow(row))
	}

	return strings.Join(rows, "\n")
}

func formatRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
