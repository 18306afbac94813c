package table

import (
	"fmt"
	"math"
	"strings"
)

// Record is a single raw data item. Its shape is defined by the caller.
type Record map[string]any

// Accessor reads a cell value from a record.
type Accessor func(Record) any

// Align controls horizontal alignment of a column's cells when rendered.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one column of a table.
type Column struct {
	// ID uniquely identifies the column within its column set.
	ID string
	// Header is the display label. Falls back to ID when empty.
	Header string
	// AccessorKey is a key or dotted path read from each record.
	AccessorKey string
	// Accessor overrides AccessorKey when set.
	Accessor Accessor
	// Width is the initial display width. Zero means auto.
	Width int
	Align Align
	// Hidden is the initial visibility.
	Hidden bool

	DisableSort   bool
	DisableFilter bool
}

// Label returns the header text for the column.
func (c Column) Label() string {
	if strings.TrimSpace(c.Header) != "" {
		return c.Header
	}
	return c.ID
}

// Sortable reports whether the column participates in the sort stage.
func (c Column) Sortable() bool { return !c.DisableSort }

// Filterable reports whether the column participates in the filter stage.
func (c Column) Filterable() bool { return !c.DisableFilter }

// Value reads the column's value from the record.
func (c Column) Value(r Record) any {
	if c.Accessor != nil {
		return c.Accessor(r)
	}
	key := c.AccessorKey
	if key == "" {
		key = c.ID
	}
	return Lookup(r, key)
}

// Lookup reads a key from a record. Keys containing dots are treated as paths
// into nested maps when no literal key of that name exists.
func Lookup(r Record, key string) any {
	if r == nil {
		return nil
	}
	if v, ok := r[key]; ok {
		return v
	}
	if !strings.Contains(key, ".") {
		return nil
	}

	var current any = map[string]any(r)
	for _, part := range strings.Split(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case Record:
			current = node[part]
		default:
			return nil
		}
	}
	return current
}

// PathAccessor returns an Accessor for a key path, resolved once.
func PathAccessor(path string) Accessor {
	return func(r Record) any {
		return Lookup(r, path)
	}
}

// SortDirection specifies the direction of sorting.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// String returns the string representation of a SortDirection.
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return fmt.Sprintf("unknown(%d)", d)
	}
}

// ParseSortDirection converts "asc"/"desc" into a SortDirection.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return SortAsc, true
	case "desc", "descending":
		return SortDesc, true
	default:
		return SortAsc, false
	}
}

// SortDescriptor describes one sort key. Earlier descriptors take priority.
type SortDescriptor struct {
	ColumnID  string
	Direction SortDirection
}

// FilterOperator names a comparison applied by a filter.
type FilterOperator string

const (
	OpEquals     FilterOperator = "equals"
	OpContains   FilterOperator = "contains"
	OpStartsWith FilterOperator = "startsWith"
	OpEndsWith   FilterOperator = "endsWith"
	OpGt         FilterOperator = "gt"
	OpGte        FilterOperator = "gte"
	OpLt         FilterOperator = "lt"
	OpLte        FilterOperator = "lte"
)

// Operators lists every operator the filter stage understands.
func Operators() []FilterOperator {
	return []FilterOperator{OpEquals, OpContains, OpStartsWith, OpEndsWith, OpGt, OpGte, OpLt, OpLte}
}

// Known reports whether the operator is one the filter stage understands.
func (op FilterOperator) Known() bool {
	for _, known := range Operators() {
		if op == known {
			return true
		}
	}
	return false
}

// FilterDescriptor restricts rows to those whose column value matches Value.
type FilterDescriptor struct {
	ColumnID string
	Value    any
	Operator FilterOperator
}

// Active reports whether the descriptor has a value to filter by.
func (f FilterDescriptor) Active() bool {
	if f.Value == nil {
		return false
	}
	if s, ok := f.Value.(string); ok && s == "" {
		return false
	}
	return true
}

// PaginationState holds the current page window.
type PaginationState struct {
	PageIndex int
	PageSize  int
}

// Offset returns the index of the first row on the current page. It
// saturates at math.MaxInt instead of overflowing.
func (p PaginationState) Offset() int {
	if p.PageIndex <= 0 || p.PageSize <= 0 {
		return 0
	}
	if p.PageIndex > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return p.PageIndex * p.PageSize
}

// PaginationUpdate is a partial update merged into PaginationState.
type PaginationUpdate struct {
	PageIndex *int
	PageSize  *int
}

// SelectionMode controls row selection behaviour.
type SelectionMode int

const (
	SelectionNone SelectionMode = iota
	SelectionSingle
	SelectionMulti
)

// String returns the string representation of a SelectionMode.
func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "single"
	case SelectionMulti:
		return "multi"
	default:
		return fmt.Sprintf("unknown(%d)", m)
	}
}

// ParseSelectionMode converts "none"/"single"/"multi" into a SelectionMode.
func ParseSelectionMode(s string) (SelectionMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SelectionNone, true
	case "single":
		return SelectionSingle, true
	case "multi", "multiple":
		return SelectionMulti, true
	default:
		return SelectionNone, false
	}
}
