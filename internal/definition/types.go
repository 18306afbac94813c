// Package definition loads table definitions: column sets, engine options,
// initial state and the records to show, from YAML files.
package definition

import (
	"strings"

	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// Definition is the decoded form of a table definition file.
type Definition struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Columns     []ColumnSpec   `yaml:"columns" validate:"required,min=1,dive"`
	ColumnOrder []string       `yaml:"column_order" validate:"omitempty,dive,column_id"`
	Options     OptionsSpec    `yaml:"options"`
	Initial     InitialSpec    `yaml:"initial"`
	Records     []table.Record `yaml:"records"`
	// Data points at an external .yaml, .yml or .json file holding a list of
	// records. Relative paths resolve against the definition file.
	Data string `yaml:"data"`

	path string
}

// ColumnSpec describes one column.
type ColumnSpec struct {
	ID     string `yaml:"id" validate:"required,column_id"`
	Header string `yaml:"header"`
	// Path is a record key or dotted path. Defaults to ID.
	Path       string `yaml:"path"`
	Width      int    `yaml:"width" validate:"gte=0"`
	Align      string `yaml:"align" validate:"omitempty,oneof=left center right"`
	Hidden     bool   `yaml:"hidden"`
	Sortable   *bool  `yaml:"sortable"`
	Filterable *bool  `yaml:"filterable"`
}

// OptionsSpec holds engine options. Unset fields keep the engine defaults.
type OptionsSpec struct {
	Sorting            *bool  `yaml:"sorting"`
	Filtering          *bool  `yaml:"filtering"`
	GlobalFilter       *bool  `yaml:"global_filter"`
	Pagination         *bool  `yaml:"pagination"`
	Selection          string `yaml:"selection" validate:"omitempty,selection_mode"`
	PageSize           int    `yaml:"page_size" validate:"gte=0"`
	AutoResetPageIndex *bool  `yaml:"auto_reset_page_index"`
	RowIDKey           string `yaml:"row_id_key"`
}

// InitialSpec seeds the state the table starts from.
type InitialSpec struct {
	Sort    []SortSpec   `yaml:"sort" validate:"omitempty,dive"`
	Filters []FilterSpec `yaml:"filters" validate:"omitempty,dive"`
	Search  string       `yaml:"search"`
	Page    int          `yaml:"page" validate:"gte=0"`
}

// SortSpec is one initial sort key.
type SortSpec struct {
	Column    string `yaml:"column" validate:"required,column_id"`
	Direction string `yaml:"direction" validate:"omitempty,sort_dir"`
}

// FilterSpec is one initial column filter.
type FilterSpec struct {
	Column   string `yaml:"column" validate:"required,column_id"`
	Operator string `yaml:"operator" validate:"required,filter_op"`
	Value    any    `yaml:"value"`
}

// Path returns the file the definition was loaded from, if any.
func (d *Definition) Path() string {
	return d.path
}

// TableColumns converts the column specs into engine columns.
func (d *Definition) TableColumns() []table.Column {
	columns := make([]table.Column, 0, len(d.Columns))
	for _, spec := range d.Columns {
		col := table.Column{
			ID:            spec.ID,
			Header:        spec.Header,
			Width:         spec.Width,
			Align:         parseAlign(spec.Align),
			Hidden:        spec.Hidden,
			DisableSort:   spec.Sortable != nil && !*spec.Sortable,
			DisableFilter: spec.Filterable != nil && !*spec.Filterable,
		}
		if spec.Path != "" {
			col.AccessorKey = spec.Path
			if strings.Contains(spec.Path, ".") {
				col.Accessor = table.PathAccessor(spec.Path)
			}
		}
		columns = append(columns, col)
	}
	return columns
}

// TableOptions builds engine options. fallbackPageSize is used when the
// definition does not set a page size.
func (d *Definition) TableOptions(fallbackPageSize int) table.Options {
	opts := table.DefaultOptions()
	spec := d.Options

	setBool(&opts.EnableSorting, spec.Sorting)
	setBool(&opts.EnableFiltering, spec.Filtering)
	setBool(&opts.EnableGlobalFilter, spec.GlobalFilter)
	setBool(&opts.EnablePagination, spec.Pagination)
	setBool(&opts.AutoResetPageIndex, spec.AutoResetPageIndex)

	if mode, ok := table.ParseSelectionMode(spec.Selection); ok && spec.Selection != "" {
		opts.SelectionMode = mode
	}
	switch {
	case spec.PageSize > 0:
		opts.DefaultPageSize = spec.PageSize
	case fallbackPageSize > 0:
		opts.DefaultPageSize = fallbackPageSize
	}
	if spec.RowIDKey != "" {
		opts.RowIDKey = spec.RowIDKey
	}

	opts.Initial = d.initialState()
	return opts
}

func (d *Definition) initialState() table.InitialState {
	initial := table.InitialState{
		GlobalFilter: d.Initial.Search,
		PageIndex:    d.Initial.Page,
	}
	for _, s := range d.Initial.Sort {
		dir, _ := table.ParseSortDirection(s.Direction)
		initial.Sorting = append(initial.Sorting, table.SortDescriptor{ColumnID: s.Column, Direction: dir})
	}
	for _, f := range d.Initial.Filters {
		initial.Filters = append(initial.Filters, table.FilterDescriptor{
			ColumnID: f.Column,
			Operator: table.FilterOperator(f.Operator),
			Value:    f.Value,
		})
	}
	return initial
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func parseAlign(s string) table.Align {
	switch strings.ToLower(s) {
	case "center":
		return table.AlignCenter
	case "right":
		return table.AlignRight
	default:
		return table.AlignLeft
	}
}
