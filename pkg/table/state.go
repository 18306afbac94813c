package table

import (
	"maps"
	"slices"

	"github.com/alexisbeaulieu97/tabula/internal/logger"
)

// DefaultPageSize is used when Options.DefaultPageSize is not positive.
const DefaultPageSize = 10

// DefaultRowIDKey is the record field consulted for row ids.
const DefaultRowIDKey = "id"

// InitialState seeds the state an Engine starts from and returns to on Reset.
type InitialState struct {
	Sorting      []SortDescriptor
	Filters      []FilterDescriptor
	GlobalFilter string
	PageIndex    int
}

// Options configures an Engine at construction time.
type Options struct {
	EnableSorting      bool
	EnableFiltering    bool
	EnableGlobalFilter bool
	EnablePagination   bool
	SelectionMode      SelectionMode
	DefaultPageSize    int
	AutoResetPageIndex bool
	// RowIDKey names the record field used as the row id. Defaults to "id".
	RowIDKey string
	Initial  InitialState

	// OnStateChange is called with every new state an action produces.
	OnStateChange func(State)
	// Logger receives debug output about recomputes. May be nil.
	Logger *logger.Logger
}

// DefaultOptions enables every pipeline stage with multi-row selection.
func DefaultOptions() Options {
	return Options{
		EnableSorting:      true,
		EnableFiltering:    true,
		EnableGlobalFilter: true,
		EnablePagination:   true,
		SelectionMode:      SelectionMulti,
		DefaultPageSize:    DefaultPageSize,
		AutoResetPageIndex: true,
		RowIDKey:           DefaultRowIDKey,
	}
}

func (o Options) pageSize() int {
	if o.DefaultPageSize <= 0 {
		return DefaultPageSize
	}
	return o.DefaultPageSize
}

func (o Options) rowIDKey() string {
	if o.RowIDKey == "" {
		return DefaultRowIDKey
	}
	return o.RowIDKey
}

// State is the complete configuration of a table instance. State values are
// treated as immutable: the With* methods return modified copies and never
// share maps, slices or sets with the receiver.
type State struct {
	Sorting          []SortDescriptor
	Filters          []FilterDescriptor
	GlobalFilter     string
	Pagination       *PaginationState
	Selection        RowSet
	ColumnVisibility map[string]bool
	ColumnOrder      []string
	ColumnWidths     map[string]int
	Expanded         RowSet
	Grouping         []string

	IsAllSelected  bool
	IsSomeSelected bool
}

// NewState builds the initial state for a column set.
func NewState(columns []Column, opts Options) State {
	s := State{
		Sorting:          slices.Clone(opts.Initial.Sorting),
		Filters:          slices.Clone(opts.Initial.Filters),
		GlobalFilter:     opts.Initial.GlobalFilter,
		Selection:        NewRowSet(),
		ColumnVisibility: make(map[string]bool, len(columns)),
		ColumnOrder:      make([]string, 0, len(columns)),
		ColumnWidths:     make(map[string]int),
		Expanded:         NewRowSet(),
		Grouping:         []string{},
	}
	if s.Sorting == nil {
		s.Sorting = []SortDescriptor{}
	}
	if s.Filters == nil {
		s.Filters = []FilterDescriptor{}
	}

	for _, col := range columns {
		s.ColumnVisibility[col.ID] = !col.Hidden
		s.ColumnOrder = append(s.ColumnOrder, col.ID)
		if col.Width > 0 {
			s.ColumnWidths[col.ID] = col.Width
		}
	}

	if opts.EnablePagination {
		s.Pagination = &PaginationState{
			PageIndex: max(opts.Initial.PageIndex, 0),
			PageSize:  opts.pageSize(),
		}
	}

	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	next := s
	next.Sorting = slices.Clone(s.Sorting)
	next.Filters = slices.Clone(s.Filters)
	if s.Pagination != nil {
		p := *s.Pagination
		next.Pagination = &p
	}
	next.Selection = s.Selection.Clone()
	next.ColumnVisibility = maps.Clone(s.ColumnVisibility)
	next.ColumnOrder = slices.Clone(s.ColumnOrder)
	next.ColumnWidths = maps.Clone(s.ColumnWidths)
	next.Expanded = s.Expanded.Clone()
	next.Grouping = slices.Clone(s.Grouping)
	return next
}

// Equal reports whether two states hold the same configuration.
func (s State) Equal(other State) bool {
	if s.GlobalFilter != other.GlobalFilter ||
		s.IsAllSelected != other.IsAllSelected ||
		s.IsSomeSelected != other.IsSomeSelected {
		return false
	}
	if !slices.Equal(s.Sorting, other.Sorting) ||
		!slices.Equal(s.ColumnOrder, other.ColumnOrder) ||
		!slices.Equal(s.Grouping, other.Grouping) {
		return false
	}
	if !slices.EqualFunc(s.Filters, other.Filters, func(a, b FilterDescriptor) bool {
		return a.ColumnID == b.ColumnID && a.Operator == b.Operator && StrictEqual(a.Value, b.Value)
	}) {
		return false
	}
	if (s.Pagination == nil) != (other.Pagination == nil) {
		return false
	}
	if s.Pagination != nil && *s.Pagination != *other.Pagination {
		return false
	}
	return maps.Equal(s.ColumnVisibility, other.ColumnVisibility) &&
		maps.Equal(s.ColumnWidths, other.ColumnWidths) &&
		s.Selection.Equal(other.Selection) &&
		s.Expanded.Equal(other.Expanded)
}

// ColumnVisible reports whether a column is shown. Columns without an explicit
// visibility entry are visible.
func (s State) ColumnVisible(id string) bool {
	visible, ok := s.ColumnVisibility[id]
	return !ok || visible
}

// SortIndex returns the priority of a column in the sort list and its direction.
func (s State) SortIndex(columnID string) (int, SortDirection, bool) {
	for i, d := range s.Sorting {
		if d.ColumnID == columnID {
			return i, d.Direction, true
		}
	}
	return -1, SortAsc, false
}

// WithSorting replaces the sort descriptors.
func (s State) WithSorting(sorting []SortDescriptor, resetPage bool) State {
	next := s.Clone()
	next.Sorting = slices.Clone(sorting)
	if resetPage {
		next.resetPageIndex()
	}
	return next
}

// WithFilters replaces the filter descriptors.
func (s State) WithFilters(filters []FilterDescriptor, resetPage bool) State {
	next := s.Clone()
	next.Filters = slices.Clone(filters)
	if resetPage {
		next.resetPageIndex()
	}
	return next
}

// WithGlobalFilter replaces the global search term.
func (s State) WithGlobalFilter(term string, resetPage bool) State {
	next := s.Clone()
	next.GlobalFilter = term
	if resetPage {
		next.resetPageIndex()
	}
	return next
}

// WithPagination merges a partial update into the pagination state. It is a
// no-op when pagination is disabled.
func (s State) WithPagination(update PaginationUpdate) State {
	if s.Pagination == nil {
		return s
	}
	next := s.Clone()
	if update.PageIndex != nil {
		next.Pagination.PageIndex = *update.PageIndex
	}
	if update.PageSize != nil {
		next.Pagination.PageSize = *update.PageSize
	}
	return next
}

// WithSelection replaces the selected row set.
func (s State) WithSelection(selection RowSet) State {
	next := s.Clone()
	next.Selection = selection.Clone()
	return next
}

// WithColumnVisibility shows or hides one column.
func (s State) WithColumnVisibility(columnID string, visible bool) State {
	next := s.Clone()
	if next.ColumnVisibility == nil {
		next.ColumnVisibility = make(map[string]bool)
	}
	next.ColumnVisibility[columnID] = visible
	return next
}

// WithColumnOrder replaces the column order.
func (s State) WithColumnOrder(order []string) State {
	next := s.Clone()
	next.ColumnOrder = slices.Clone(order)
	return next
}

// WithColumnWidth sets one column's display width.
func (s State) WithColumnWidth(columnID string, width int) State {
	next := s.Clone()
	if next.ColumnWidths == nil {
		next.ColumnWidths = make(map[string]int)
	}
	next.ColumnWidths[columnID] = width
	return next
}

// WithExpansionToggled flips one row's expansion.
func (s State) WithExpansionToggled(id RowID) State {
	next := s.Clone()
	next.Expanded = s.Expanded.Toggle(id)
	return next
}

// WithGrouping replaces the grouping column list.
func (s State) WithGrouping(columnIDs []string) State {
	next := s.Clone()
	next.Grouping = slices.Clone(columnIDs)
	return next
}

// withSelectionFlags returns a copy whose derived selection flags are computed
// against the processed row ids.
func (s State) withSelectionFlags(processed []RowID) State {
	all, some := selectionFlags(s.Selection, processed)
	if all == s.IsAllSelected && some == s.IsSomeSelected {
		return s
	}
	next := s.Clone()
	next.IsAllSelected = all
	next.IsSomeSelected = some
	return next
}

func (s *State) resetPageIndex() {
	if s.Pagination != nil {
		s.Pagination.PageIndex = 0
	}
}

// selectionFlags reports whether every processed row is selected, and whether
// some but not all of them are.
func selectionFlags(selection RowSet, processed []RowID) (all, some bool) {
	if len(processed) == 0 || selection.Len() == 0 {
		return false, false
	}
	selected := 0
	for _, id := range processed {
		if selection.Has(id) {
			selected++
		}
	}
	all = selected == len(processed)
	some = selected > 0 && !all
	return all, some
}
