package components

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// DefaultMaxCellWidth caps auto-sized columns.
const DefaultMaxCellWidth = 32

// DataTable renders the current page of a table result: a header row with
// sort indicators, a rule, one line per row and detail lines for expanded
// rows.
type DataTable struct {
	BaseComponent
	result       table.Result
	sorting      []table.SortDescriptor
	cursor       int
	focused      string
	selectable   bool
	striped      bool
	maxCellWidth int
}

// NewDataTable creates a table view over a recompute result.
func NewDataTable(result table.Result) *DataTable {
	return &DataTable{
		BaseComponent: NewBaseComponent(),
		result:        result,
		cursor:        -1,
		striped:       true,
		maxCellWidth:  DefaultMaxCellWidth,
	}
}

// WithSorting supplies the active sort so headers can show indicators.
func (d *DataTable) WithSorting(sorting []table.SortDescriptor) *DataTable {
	d.sorting = sorting
	return d
}

// WithCursor highlights the row at the given page index. Negative disables
// the cursor column.
func (d *DataTable) WithCursor(index int) *DataTable {
	d.cursor = index
	return d
}

// WithFocusedColumn highlights one column header.
func (d *DataTable) WithFocusedColumn(columnID string) *DataTable {
	d.focused = columnID
	return d
}

// WithSelectionColumn adds a checkbox column.
func (d *DataTable) WithSelectionColumn(show bool) *DataTable {
	d.selectable = show
	return d
}

// WithStriped toggles alternate row shading.
func (d *DataTable) WithStriped(striped bool) *DataTable {
	d.striped = striped
	return d
}

// WithMaxCellWidth caps auto-sized columns. Columns with an explicit width
// are not affected.
func (d *DataTable) WithMaxCellWidth(width int) *DataTable {
	if width > 0 {
		d.maxCellWidth = width
	}
	return d
}

// View renders the table with the default theme.
func (d *DataTable) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table.
func (d *DataTable) ViewWithContext(ctx RenderContext) string {
	styles := ctx.Theme.Table
	columns := d.result.Columns
	if len(columns) == 0 {
		return styles.Empty.Render("No visible columns")
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Label() + d.sortIndicator(ctx, col.ID)
	}
	cells := make([][]string, len(d.result.Rows))
	for r, row := range d.result.Rows {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			cells[r][i] = cellText(col.Value(row.Original))
		}
	}
	widths := d.columnWidths(columns, headers, cells)
	sep := styles.Separator.Render(ctx.glyph(" │ ", " | "))

	lines := make([]string, 0, len(d.result.Rows)+3)

	var header []string
	if d.cursor >= 0 {
		header = append(header, " ")
	}
	if d.selectable {
		header = append(header, styles.Header.Render(d.headerCheckbox()))
	}
	for i, col := range columns {
		style := styles.Header
		if col.ID == d.focused {
			style = styles.FocusedHeader
		}
		header = append(header, style.Render(fit(headers[i], widths[i], col.Align, ctx)))
	}
	lines = append(lines, strings.Join(header, sep))
	lines = append(lines, d.rule(ctx, widths))

	if len(d.result.Rows) == 0 {
		lines = append(lines, styles.Empty.Render("No matching rows"))
	}

	for r, row := range d.result.Rows {
		style := d.rowStyle(styles, r, row)
		var line []string
		if d.cursor >= 0 {
			marker := " "
			if r == d.cursor {
				marker = ctx.glyph("›", ">")
			}
			line = append(line, marker)
		}
		if d.selectable {
			line = append(line, style.Render(checkbox(row.Selected, false)))
		}
		for i, col := range columns {
			line = append(line, style.Render(fit(cells[r][i], widths[i], col.Align, ctx)))
		}
		lines = append(lines, strings.Join(line, sep))

		if row.Expanded {
			lines = append(lines, d.detailLines(ctx, row)...)
		}
	}

	if ctx.MaxWidth > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, ctx.MaxWidth, "")
		}
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Join(lines, "\n"))
}

func (d *DataTable) columnWidths(columns []table.Column, headers []string, cells [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := lipgloss.Width(headers[i])
		for _, row := range cells {
			w = max(w, lipgloss.Width(row[i]))
		}
		widths[i] = max(min(w, d.maxCellWidth), 1)
	}
	return widths
}

func (d *DataTable) rule(ctx RenderContext, widths []int) string {
	dash := ctx.glyph("─", "-")
	parts := make([]string, 0, len(widths)+2)
	if d.cursor >= 0 {
		parts = append(parts, dash)
	}
	if d.selectable {
		parts = append(parts, strings.Repeat(dash, 3))
	}
	for _, w := range widths {
		parts = append(parts, strings.Repeat(dash, w))
	}
	joint := ctx.glyph("─┼─", "-+-")
	return ctx.Theme.Table.Separator.Render(strings.Join(parts, joint))
}

func (d *DataTable) rowStyle(styles TableStyles, index int, row table.Row) lipgloss.Style {
	switch {
	case index == d.cursor:
		return styles.CursorCell
	case row.Selected:
		return styles.SelectedCell
	case d.striped && index%2 == 1:
		return styles.StripedCell
	default:
		return styles.Cell
	}
}

func (d *DataTable) detailLines(ctx RenderContext, row table.Row) []string {
	keys := slices.Sorted(maps.Keys(row.Original))
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		text := "    " + key + ": " + cellText(row.Original[key])
		lines = append(lines, ctx.Theme.Table.Detail.Render(text))
	}
	return lines
}

func (d *DataTable) sortIndicator(ctx RenderContext, columnID string) string {
	for i, s := range d.sorting {
		if s.ColumnID != columnID {
			continue
		}
		arrow := ctx.glyph("▲", "^")
		if s.Direction == table.SortDesc {
			arrow = ctx.glyph("▼", "v")
		}
		if len(d.sorting) > 1 {
			arrow += strconv.Itoa(i + 1)
		}
		return " " + arrow
	}
	return ""
}

func (d *DataTable) headerCheckbox() string {
	return checkbox(d.result.Meta.IsAllSelected, d.result.Meta.IsSomeSelected)
}

func checkbox(checked, partial bool) string {
	switch {
	case checked:
		return "[x]"
	case partial:
		return "[-]"
	default:
		return "[ ]"
	}
}

// cellText flattens a value onto one line.
func cellText(v any) string {
	s := table.ToString(v)
	if strings.ContainsAny(s, "\r\n\t") {
		s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	}
	return s
}

// fit truncates text to width and pads it according to align.
func fit(text string, width int, align table.Align, ctx RenderContext) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) > width {
		tail := ctx.glyph("…", "~")
		if width <= lipgloss.Width(tail) {
			tail = ""
		}
		text = ansi.Truncate(text, width, tail)
	}
	return lipgloss.PlaceHorizontal(width, alignPosition(align), text)
}

func alignPosition(align table.Align) lipgloss.Position {
	switch align {
	case table.AlignCenter:
		return lipgloss.Center
	case table.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
