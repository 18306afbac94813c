package table

import (
	"slices"
)

// ApplySort returns a stably sorted copy of records. Descriptors are applied in
// priority order; records that tie on every descriptor keep their input order.
// The input slice is never reordered.
func ApplySort(records []Record, columns []Column, sorting []SortDescriptor) []Record {
	keys := sortKeys(columns, sorting)
	if len(keys) == 0 {
		return records
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		for _, key := range keys {
			c := CompareValues(key.column.Value(a), key.column.Value(b))
			if c == 0 {
				continue
			}
			if key.direction == SortDesc {
				return -c
			}
			return c
		}
		return 0
	})
	return sorted
}

type sortKey struct {
	column    Column
	direction SortDirection
}

func sortKeys(columns []Column, sorting []SortDescriptor) []sortKey {
	if len(sorting) == 0 {
		return nil
	}

	index := columnIndex(columns)
	keys := make([]sortKey, 0, len(sorting))
	for _, s := range sorting {
		col, ok := index[s.ColumnID]
		if !ok {
			col = Column{ID: s.ColumnID}
		}
		if !col.Sortable() {
			continue
		}
		keys = append(keys, sortKey{column: col, direction: s.Direction})
	}
	return keys
}
