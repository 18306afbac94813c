package table

// ApplyPagination returns the records on the current page. A nil pagination
// returns every record. Pages past the end, negative indexes and non-positive
// page sizes yield an empty slice.
func ApplyPagination(records []Record, pagination *PaginationState) []Record {
	if pagination == nil {
		return records
	}
	if pagination.PageIndex < 0 || pagination.PageSize <= 0 {
		return []Record{}
	}

	start := pagination.Offset()
	if start >= len(records) {
		return []Record{}
	}
	end := min(start+pagination.PageSize, len(records))
	return records[start:end]
}

// TotalPages returns ceil(totalRows/pageSize), or 1 when pagination is
// disabled. An empty collection has zero pages.
func TotalPages(totalRows int, pagination *PaginationState) int {
	if pagination == nil {
		return 1
	}
	if pagination.PageSize <= 0 {
		return 0
	}
	return (totalRows + pagination.PageSize - 1) / pagination.PageSize
}
