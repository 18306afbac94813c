package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabula/internal/definition"
	"github.com/alexisbeaulieu97/tabula/internal/ui/components"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

type renderOptions struct {
	sorts      []string
	filters    []string
	search     string
	page       int
	hide       []string
	order      string
	selects    []string
	jsonOutput bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <definition>",
		Short: "Render one page of a table definition",
		Long: `Render loads a table definition, applies the sort, filter, search and
paging flags on top of its initial state and prints the resulting page.`,
		Example: `  tabula render people.yaml --sort age:desc --filter city:equals:Oslo
  tabula render people.yaml --search ann --page 2 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sorts, "sort", nil, "Sort by column, as id[:asc|desc] (repeatable, earlier wins)")
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "Filter rows, as id:operator:value (repeatable)")
	cmd.Flags().StringVar(&opts.search, "search", "", "Search every visible column")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number, starting at 1")
	cmd.Flags().StringArrayVar(&opts.hide, "hide", nil, "Hide a column (repeatable)")
	cmd.Flags().StringVar(&opts.order, "order", "", "Column order, as id,id,...")
	cmd.Flags().StringArrayVar(&opts.selects, "select", nil, "Select a row by id (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output columns, rows and meta as JSON")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *renderOptions) error {
	if opts.page < 1 {
		return newCommandError("render", "parsing flags", tabulaerrors.NewArgumentError("page", fmt.Sprint(opts.page), "must be 1 or greater"), "Pages are numbered from 1.")
	}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	def, err := definition.Load(path)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("loading definition %s", path), err, "Check the definition's YAML and its data file.")
	}

	engine := app.newEngine(def)
	engine.SetData(def.Records)

	if err := applyRenderOptions(cmd, engine, opts); err != nil {
		return newCommandError("render", "applying flags", err, "Column ids must match the ids declared in the definition.")
	}

	if opts.jsonOutput {
		return renderJSON(cmd.OutOrStdout(), def, engine.Result())
	}

	view := components.TableView(engine.Result(), components.TableViewOptions{
		Title:        def.Title,
		Description:  def.Description,
		Sorting:      engine.State().Sorting,
		Filters:      engine.State().Filters,
		GlobalFilter: engine.State().GlobalFilter,
		Cursor:       -1,
		Selectable:   len(opts.selects) > 0,
		Striped:      true,
		MaxCellWidth: app.settings.MaxCellWidth,
	})
	_, err = fmt.Fprintln(cmd.OutOrStdout(), view.ViewWithContext(app.renderContext(cmd.OutOrStdout())))
	return err
}

// applyRenderOptions layers the command line state over the definition's
// initial state.
func applyRenderOptions(cmd *cobra.Command, engine *table.Engine, opts *renderOptions) error {
	columns := newColumnSet(engine.Columns())

	if len(opts.sorts) > 0 {
		sorting := make([]table.SortDescriptor, 0, len(opts.sorts))
		for _, value := range opts.sorts {
			s, err := parseSort(value, columns)
			if err != nil {
				return err
			}
			sorting = append(sorting, s)
		}
		engine.SetSort(sorting)
	}

	for _, value := range opts.filters {
		f, err := parseFilter(value, columns)
		if err != nil {
			return err
		}
		engine.SetFilter(f)
	}

	if cmd.Flags().Changed("search") {
		engine.SetGlobalFilter(opts.search)
	}

	for _, value := range opts.hide {
		ids, err := parseColumnList("hide", value, columns)
		if err != nil {
			return err
		}
		for _, id := range ids {
			engine.SetColumnVisibility(id, false)
		}
	}

	if opts.order != "" {
		order, err := parseColumnList("order", opts.order, columns)
		if err != nil {
			return err
		}
		engine.SetColumnOrder(order)
	}

	if opts.page > 1 {
		index := opts.page - 1
		engine.SetPagination(table.PaginationUpdate{PageIndex: &index})
	}

	for _, id := range opts.selects {
		engine.ToggleRowSelection(table.RowID(id))
	}
	return nil
}

type renderJSONPayload struct {
	Title   string       `json:"title,omitempty"`
	Columns []jsonColumn `json:"columns"`
	Rows    []jsonRow    `json:"rows"`
	Meta    jsonMeta     `json:"meta"`
}

type jsonColumn struct {
	ID     string `json:"id"`
	Header string `json:"header"`
}

type jsonRow struct {
	ID       string         `json:"id"`
	Selected bool           `json:"selected"`
	Expanded bool           `json:"expanded,omitempty"`
	Values   map[string]any `json:"values"`
}

type jsonMeta struct {
	TotalRows       int    `json:"total_rows"`
	TotalPages      int    `json:"total_pages"`
	Page            int    `json:"page"`
	PageSize        int    `json:"page_size"`
	HasNextPage     bool   `json:"has_next_page"`
	HasPreviousPage bool   `json:"has_previous_page"`
	SelectedCount   int    `json:"selected_count"`
	Error           string `json:"error,omitempty"`
}

func renderJSON(w io.Writer, def *definition.Definition, res table.Result) error {
	payload := renderJSONPayload{
		Title:   def.Title,
		Columns: make([]jsonColumn, 0, len(res.Columns)),
		Rows:    make([]jsonRow, 0, len(res.Rows)),
		Meta: jsonMeta{
			TotalRows:       res.Meta.TotalRows,
			TotalPages:      res.Meta.TotalPages,
			Page:            res.Meta.PageIndex + 1,
			PageSize:        res.Meta.PageSize,
			HasNextPage:     res.Meta.HasNextPage,
			HasPreviousPage: res.Meta.HasPreviousPage,
			SelectedCount:   res.Meta.SelectedCount,
		},
	}
	if res.Meta.Error != nil {
		payload.Meta.Error = res.Meta.Error.Error()
	}

	for _, col := range res.Columns {
		payload.Columns = append(payload.Columns, jsonColumn{ID: col.ID, Header: col.Label()})
	}
	for _, row := range res.Rows {
		values := make(map[string]any, len(res.Columns))
		for _, col := range res.Columns {
			values[col.ID] = col.Value(row.Original)
		}
		payload.Rows = append(payload.Rows, jsonRow{
			ID:       string(row.ID),
			Selected: row.Selected,
			Expanded: row.Expanded,
			Values:   values,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
