package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/tabula/internal/ui"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// TableViewOptions controls what TableView shows around the data table.
type TableViewOptions struct {
	Title        string
	Description  string
	Sorting      []table.SortDescriptor
	Filters      []table.FilterDescriptor
	GlobalFilter string
	// Cursor is the highlighted row on the page, or -1 for none.
	Cursor        int
	FocusedColumn string
	Selectable    bool
	Striped       bool
	MaxCellWidth  int
}

// TableView composes the header, status badges, error alert, data table and
// pager for one result.
func TableView(result table.Result, opts TableViewOptions) *Stack {
	var children []ui.Renderable
	if opts.Title != "" || opts.Description != "" {
		children = append(children, NewHeader(opts.Title).WithSubtitle(opts.Description))
	}

	if badges := statusBadges(result.Meta, opts); len(badges) > 0 {
		children = append(children, HStack(badges...).WithGap(1))
	}
	if result.Meta.Error != nil {
		children = append(children, ErrorAlert(result.Meta.Error.Error()).WithTitle("Data source error"))
	}

	children = append(children,
		NewDataTable(result).
			WithSorting(opts.Sorting).
			WithCursor(opts.Cursor).
			WithFocusedColumn(opts.FocusedColumn).
			WithSelectionColumn(opts.Selectable).
			WithStriped(opts.Striped).
			WithMaxCellWidth(opts.MaxCellWidth),
		NewPager(result.Meta),
	)
	return VStack(children...)
}

func statusBadges(meta table.Meta, opts TableViewOptions) []ui.Renderable {
	var badges []ui.Renderable
	if meta.Loading {
		badges = append(badges, LoadingBadge())
	}
	if opts.GlobalFilter != "" {
		badges = append(badges, FilterBadge(fmt.Sprintf("search: %q", opts.GlobalFilter)))
	}
	for _, f := range opts.Filters {
		if f.Active() {
			badges = append(badges, FilterBadge(fmt.Sprintf("%s %s %s", f.ColumnID, f.Operator, table.ToString(f.Value))))
		}
	}
	if meta.SelectedCount > 0 {
		badges = append(badges, SelectionBadge(meta.SelectedCount))
	}
	return badges
}
