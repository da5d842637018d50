package tableview

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns the rows where any cell fuzzy matches the query, ignoring case.
// An empty query matches every row.
func Filter(rows []table.Row, query string) []table.Row {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}

	filtered := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if fuzzy.MatchFold(query, cell) {
				filtered = append(filtered, row)
				break
			}
		}
	}

	return filtered
}
