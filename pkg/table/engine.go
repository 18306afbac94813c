package table

import (
	"slices"
)

// Engine owns the state of one table instance and recomputes its output after
// every action. Records are supplied by the caller through SetData and are
// only read. An Engine is not safe for concurrent use.
type Engine struct {
	columns []Column
	opts    Options
	state   State
	records []Record
	loading bool
	err     error
	result  Result
}

// New creates an engine for the given columns. The column slice is copied.
func New(columns []Column, opts Options) *Engine {
	e := &Engine{
		columns: slices.Clone(columns),
		opts:    opts,
	}
	e.opts.Logger = opts.Logger.With("component", "table")
	e.state = NewState(e.columns, e.opts)
	e.refresh("init", false)
	return e
}

// Columns returns the full column definitions, hidden ones included.
func (e *Engine) Columns() []Column {
	return slices.Clone(e.columns)
}

// Options returns the construction options.
func (e *Engine) Options() Options {
	return e.opts
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Result returns the output of the latest recompute.
func (e *Engine) Result() Result {
	return e.result
}

// SetData replaces the borrowed record slice and recomputes.
func (e *Engine) SetData(records []Record) Result {
	e.records = records
	e.refresh("set_data", false)
	return e.result
}

// SetLoading sets the pass-through loading flag.
func (e *Engine) SetLoading(loading bool) {
	e.loading = loading
	e.result.Meta.Loading = loading
}

// SetError sets the pass-through error value.
func (e *Engine) SetError(err error) {
	e.err = err
	e.result.Meta.Error = err
}

// SetState replaces the whole state, for callers that control state
// themselves. OnStateChange is not invoked.
func (e *Engine) SetState(state State) Result {
	e.state = state.Clone()
	e.refresh("set_state", false)
	return e.result
}

// SetSort replaces the sort descriptors.
func (e *Engine) SetSort(sorting []SortDescriptor) State {
	return e.commit("set_sort", e.state.WithSorting(sorting, e.opts.AutoResetPageIndex))
}

// ToggleSort cycles a column through ascending, descending and unsorted, the
// way a header click does. With multi set, other sort keys are kept and the
// column is appended as the lowest priority key.
func (e *Engine) ToggleSort(columnID string, multi bool) State {
	if !e.opts.EnableSorting {
		return e.inert("toggle_sort", "sorting disabled", "column", columnID)
	}
	if col, ok := columnIndex(e.columns)[columnID]; ok && !col.Sortable() {
		return e.inert("toggle_sort", "column not sortable", "column", columnID)
	}

	idx, dir, found := e.state.SortIndex(columnID)
	var next []SortDescriptor
	if multi {
		next = slices.Clone(e.state.Sorting)
	}

	switch {
	case !found:
		next = append(next, SortDescriptor{ColumnID: columnID, Direction: SortAsc})
	case dir == SortAsc:
		if multi {
			next[idx].Direction = SortDesc
		} else {
			next = []SortDescriptor{{ColumnID: columnID, Direction: SortDesc}}
		}
	default:
		if multi {
			next = slices.Delete(next, idx, idx+1)
		}
	}

	if next == nil {
		next = []SortDescriptor{}
	}
	return e.SetSort(next)
}

// SetFilters replaces the filter descriptors.
func (e *Engine) SetFilters(filters []FilterDescriptor) State {
	return e.commit("set_filters", e.state.WithFilters(filters, e.opts.AutoResetPageIndex))
}

// SetFilter adds or replaces the filter for one column. An inactive
// descriptor removes the column's filter.
func (e *Engine) SetFilter(filter FilterDescriptor) State {
	next := make([]FilterDescriptor, 0, len(e.state.Filters)+1)
	replaced := false
	for _, existing := range e.state.Filters {
		if existing.ColumnID != filter.ColumnID {
			next = append(next, existing)
			continue
		}
		if !replaced && filter.Active() {
			next = append(next, filter)
		}
		replaced = true
	}
	if !replaced && filter.Active() {
		next = append(next, filter)
	}
	return e.SetFilters(next)
}

// SetGlobalFilter replaces the global search term.
func (e *Engine) SetGlobalFilter(term string) State {
	return e.commit("set_global_filter", e.state.WithGlobalFilter(term, e.opts.AutoResetPageIndex))
}

// SetPagination merges a partial pagination update. It does nothing when
// pagination is disabled.
func (e *Engine) SetPagination(update PaginationUpdate) State {
	if e.state.Pagination == nil {
		return e.inert("set_pagination", "pagination disabled")
	}
	return e.commit("set_pagination", e.state.WithPagination(update))
}

// NextPage advances one page when a next page exists.
func (e *Engine) NextPage() State {
	if !e.result.Meta.HasNextPage || e.state.Pagination == nil {
		return e.inert("next_page", "no next page")
	}
	index := e.state.Pagination.PageIndex + 1
	return e.SetPagination(PaginationUpdate{PageIndex: &index})
}

// PreviousPage goes back one page when a previous page exists.
func (e *Engine) PreviousPage() State {
	if !e.result.Meta.HasPreviousPage || e.state.Pagination == nil {
		return e.inert("previous_page", "no previous page")
	}
	index := min(e.state.Pagination.PageIndex-1, max(e.result.Meta.TotalPages-1, 0))
	return e.SetPagination(PaginationUpdate{PageIndex: &index})
}

// SetPageSize changes the page size and returns to the first page.
func (e *Engine) SetPageSize(size int) State {
	if size <= 0 {
		return e.inert("set_page_size", "page size must be positive", "size", size)
	}
	index := 0
	return e.SetPagination(PaginationUpdate{PageIndex: &index, PageSize: &size})
}

// ToggleRowSelection selects or deselects one row. In single selection mode
// selecting a row clears every other selection.
func (e *Engine) ToggleRowSelection(id RowID) State {
	switch e.opts.SelectionMode {
	case SelectionSingle:
		next := NewRowSet()
		if !e.state.Selection.Has(id) {
			next = NewRowSet(id)
		}
		return e.commit("toggle_row_selection", e.state.WithSelection(next))
	case SelectionMulti:
		return e.commit("toggle_row_selection", e.state.WithSelection(e.state.Selection.Toggle(id)))
	default:
		return e.inert("toggle_row_selection", "selection disabled", "row", string(id))
	}
}

// ToggleAllRowsSelection switches between no selection and every processed
// row selected. It does nothing outside multi selection mode.
func (e *Engine) ToggleAllRowsSelection() State {
	if e.opts.SelectionMode != SelectionMulti {
		return e.inert("toggle_all_rows_selection", "multi selection disabled")
	}

	all, _ := selectionFlags(e.state.Selection, e.result.ProcessedIDs)
	if all {
		return e.commit("toggle_all_rows_selection", e.state.WithSelection(NewRowSet()))
	}
	return e.commit("toggle_all_rows_selection", e.state.WithSelection(NewRowSet(e.result.ProcessedIDs...)))
}

// SelectedRecords returns the processed records whose rows are selected, in
// sorted order.
func (e *Engine) SelectedRecords() []Record {
	if e.state.Selection.Len() == 0 {
		return nil
	}
	selected := make([]Record, 0, e.state.Selection.Len())
	for _, row := range e.allRows() {
		if row.Selected {
			selected = append(selected, row.Original)
		}
	}
	return selected
}

// SetColumnVisibility shows or hides a column. Unknown ids are stored but
// have no effect.
func (e *Engine) SetColumnVisibility(columnID string, visible bool) State {
	return e.commit("set_column_visibility", e.state.WithColumnVisibility(columnID, visible))
}

// ShowAllColumns makes every defined column visible.
func (e *Engine) ShowAllColumns() State {
	next := e.state.Clone()
	for _, col := range e.columns {
		next.ColumnVisibility[col.ID] = true
	}
	return e.commit("show_all_columns", next)
}

// SetColumnOrder replaces the column order.
func (e *Engine) SetColumnOrder(order []string) State {
	return e.commit("set_column_order", e.state.WithColumnOrder(order))
}

// SetColumnWidth sets a column's display width.
func (e *Engine) SetColumnWidth(columnID string, width int) State {
	return e.commit("set_column_width", e.state.WithColumnWidth(columnID, width))
}

// ToggleRowExpansion expands or collapses one row.
func (e *Engine) ToggleRowExpansion(id RowID) State {
	return e.commit("toggle_row_expansion", e.state.WithExpansionToggled(id))
}

// SetGrouping replaces the grouping column list.
func (e *Engine) SetGrouping(columnIDs []string) State {
	return e.commit("set_grouping", e.state.WithGrouping(columnIDs))
}

// Reset restores the initial state derived from the columns and options.
func (e *Engine) Reset() State {
	return e.commit("reset", NewState(e.columns, e.opts))
}

func (e *Engine) commit(action string, next State) State {
	e.state = next
	e.refresh(action, true)
	return e.state.Clone()
}

func (e *Engine) inert(action, reason string, kv ...any) State {
	e.opts.Logger.Debug("action ignored", append([]any{"action", action, "reason", reason}, kv...)...)
	return e.state.Clone()
}

func (e *Engine) refresh(action string, notify bool) {
	before := e.state
	e.recompute()
	e.state = e.state.withSelectionFlags(e.result.ProcessedIDs)

	if e.opts.Logger.DebugEnabled() {
		e.opts.Logger.Debug("table recomputed",
			"action", action,
			"records", len(e.records),
			"total_rows", e.result.Meta.TotalRows,
			"page_rows", len(e.result.Rows),
			"page_index", e.result.Meta.PageIndex,
			"selected", e.result.Meta.SelectedCount,
		)
	}

	flagsChanged := before.IsAllSelected != e.state.IsAllSelected || before.IsSomeSelected != e.state.IsSomeSelected
	if e.opts.OnStateChange != nil && (notify || flagsChanged) {
		e.opts.OnStateChange(e.state.Clone())
	}
}

func (e *Engine) recompute() {
	e.result = Recompute(Input{
		Records: e.records,
		Columns: e.columns,
		State:   e.state,
		Options: e.opts,
		Loading: e.loading,
		Error:   e.err,
	})
}

// allRows reruns the pipeline without paging.
func (e *Engine) allRows() []Row {
	opts := e.opts
	opts.EnablePagination = false
	return Recompute(Input{Records: e.records, Columns: e.columns, State: e.state, Options: opts}).Rows
}
