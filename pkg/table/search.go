package table

import "strings"

// ApplyGlobalSearch keeps records where at least one of the given columns
// contains term, case-insensitively. A blank term passes records through.
// Callers pass only the visible columns.
func ApplyGlobalSearch(records []Record, columns []Column, term string) []Record {
	needle := strings.ToLower(term)
	if needle == "" {
		return records
	}

	result := make([]Record, 0, len(records))
	for _, record := range records {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(ToString(col.Value(record))), needle) {
				result = append(result, record)
				break
			}
		}
	}
	return result
}
