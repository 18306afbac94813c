package table

// Meta carries derived counters and caller-supplied status flags.
type Meta struct {
	// TotalRows counts rows after filtering, search and sort, before paging.
	TotalRows       int
	TotalPages      int
	PageIndex       int
	PageSize        int
	HasNextPage     bool
	HasPreviousPage bool

	SelectedCount  int
	IsAllSelected  bool
	IsSomeSelected bool

	// Loading and Error are passed through from the caller unchanged.
	Loading bool
	Error   error
}

// Result is the output of one pipeline run.
type Result struct {
	Rows    []Row
	Columns []Column
	Meta    Meta
	// ProcessedIDs lists the id of every row that survived filtering and
	// search, in sorted order, across all pages.
	ProcessedIDs []RowID
}

// Input bundles everything Recompute reads.
type Input struct {
	Records []Record
	Columns []Column
	State   State
	Options Options
	Loading bool
	Error   error
}

// Recompute runs the pipeline: filter, global search, sort, paginate, then
// materializes rows and columns. It is pure and deterministic.
func Recompute(in Input) Result {
	state := in.State
	opts := in.Options

	processed := in.Records
	if opts.EnableFiltering {
		processed = ApplyFilters(processed, in.Columns, state.Filters)
	}

	visible := MaterializeColumns(in.Columns, state)
	if opts.EnableGlobalFilter {
		processed = ApplyGlobalSearch(processed, visible, state.GlobalFilter)
	}
	if opts.EnableSorting {
		processed = ApplySort(processed, in.Columns, state.Sorting)
	}

	ids := DeriveRowIDs(processed, opts.rowIDKey())

	var pagination *PaginationState
	if opts.EnablePagination {
		pagination = state.Pagination
	}
	page := ApplyPagination(processed, pagination)

	offset := 0
	if pagination != nil {
		offset = pagination.Offset()
	}

	all, some := selectionFlags(state.Selection, ids)
	meta := Meta{
		TotalRows:      len(processed),
		TotalPages:     TotalPages(len(processed), pagination),
		SelectedCount:  state.Selection.Len(),
		IsAllSelected:  all,
		IsSomeSelected: some,
		Loading:        in.Loading,
		Error:          in.Error,
	}
	if pagination != nil {
		meta.PageIndex = pagination.PageIndex
		meta.PageSize = pagination.PageSize
		meta.HasPreviousPage = pagination.PageIndex > 0
		meta.HasNextPage = pagination.PageIndex < meta.TotalPages-1
	} else {
		meta.PageSize = len(processed)
	}

	return Result{
		Rows:         MaterializeRows(page, ids, offset, state),
		Columns:      visible,
		Meta:         meta,
		ProcessedIDs: ids,
	}
}
