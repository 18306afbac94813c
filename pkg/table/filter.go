package table

import (
	"strings"
)

// ApplyFilters returns the records matching every active filter descriptor.
// With no active descriptors the input slice is returned unchanged.
func ApplyFilters(records []Record, columns []Column, filters []FilterDescriptor) []Record {
	active := activeFilters(columns, filters)
	if len(active) == 0 {
		return records
	}

	result := make([]Record, 0, len(records))
	for _, record := range records {
		if matchesAll(record, active) {
			result = append(result, record)
		}
	}
	return result
}

type boundFilter struct {
	column     Column
	descriptor FilterDescriptor
}

func activeFilters(columns []Column, filters []FilterDescriptor) []boundFilter {
	if len(filters) == 0 {
		return nil
	}

	index := columnIndex(columns)
	bound := make([]boundFilter, 0, len(filters))
	for _, f := range filters {
		if !f.Active() {
			continue
		}
		col, ok := index[f.ColumnID]
		if !ok {
			// Unknown ids read the record key of the same name.
			col = Column{ID: f.ColumnID}
		}
		if !col.Filterable() {
			continue
		}
		bound = append(bound, boundFilter{column: col, descriptor: f})
	}
	return bound
}

func matchesAll(record Record, filters []boundFilter) bool {
	for _, f := range filters {
		if !MatchFilter(f.column.Value(record), f.descriptor.Value, f.descriptor.Operator) {
			return false
		}
	}
	return true
}

// MatchFilter evaluates a single operator against a cell value.
// Unknown operators always match.
func MatchFilter(cell, target any, op FilterOperator) bool {
	switch op {
	case OpEquals:
		return StrictEqual(cell, target)
	case OpContains:
		return strings.Contains(strings.ToLower(ToString(cell)), strings.ToLower(ToString(target)))
	case OpStartsWith:
		return strings.HasPrefix(strings.ToLower(ToString(cell)), strings.ToLower(ToString(target)))
	case OpEndsWith:
		return strings.HasSuffix(strings.ToLower(ToString(cell)), strings.ToLower(ToString(target)))
	case OpGt, OpGte, OpLt, OpLte:
		return compareNumeric(cell, target, op)
	default:
		return true
	}
}

func compareNumeric(cell, target any, op FilterOperator) bool {
	x, ok := ToNumber(cell)
	if !ok {
		return false
	}
	y, ok := ToNumber(target)
	if !ok {
		return false
	}

	switch op {
	case OpGt:
		return x > y
	case OpGte:
		return x >= y
	case OpLt:
		return x < y
	case OpLte:
		return x <= y
	default:
		return false
	}
}

func columnIndex(columns []Column) map[string]Column {
	index := make(map[string]Column, len(columns))
	for _, col := range columns {
		if _, exists := index[col.ID]; !exists {
			index[col.ID] = col
		}
	}
	return index
}
