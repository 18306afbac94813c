package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

func plainContext() RenderContext {
	return DefaultContext().WithTheme(PlainTheme()).WithASCII(true)
}

func peopleEngine(t *testing.T) *table.Engine {
	t.Helper()
	e := table.New([]table.Column{
		{ID: "id", Header: "ID"},
		{ID: "name", Header: "Name"},
		{ID: "age", Header: "Age", Align: table.AlignRight},
	}, table.DefaultOptions())
	e.SetData([]table.Record{
		{"id": 1, "name": "Bob", "age": 35},
		{"id": 2, "name": "Ann", "age": 25},
		{"id": 3, "name": "Cid", "age": 30},
	})
	return e
}

func renderLines(t *testing.T, d *DataTable) []string {
	t.Helper()
	return strings.Split(d.ViewWithContext(plainContext()), "\n")
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme, ok := ThemeByName(name)
		require.True(t, ok, name)
		require.Equal(t, name, theme.Name)
		require.NotNil(t, theme.Variants.Get(BadgeVariantSuccess))
		require.NotNil(t, theme.Variants.Get(AlertVariantError))
	}

	_, ok := ThemeByName("neon")
	require.False(t, ok)
	require.True(t, IsKnownTheme(" DARK "))
	require.False(t, IsKnownTheme("neon"))

	fallback, ok := ThemeByName("")
	require.True(t, ok)
	require.Equal(t, ThemeDefault, fallback.Name)
}

func TestDarkThemeDiffersFromDefault(t *testing.T) {
	t.Parallel()

	light := DefaultTheme()
	dark := DarkTheme()
	require.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light)
	require.Equal(t, lipgloss.RoundedBorder(), dark.Borders.Rounded)
	require.True(t, dark.Typography.Title.GetBold())
}

func TestAppliersCompose(t *testing.T) {
	t.Parallel()

	var b BaseComponent
	b.SetAppliers(PaddingX(1))
	b.AddAppliers(Border(BorderVariantNormal))

	style := b.ComputeStyle(DefaultTheme())
	require.Equal(t, 1, style.GetPaddingLeft())
	require.Equal(t, lipgloss.NormalBorder(), style.GetBorderStyle())
}

func TestDataTableRendersHeaderRuleAndRows(t *testing.T) {
	t.Parallel()

	lines := renderLines(t, NewDataTable(peopleEngine(t).Result()))

	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "ID")
	require.Contains(t, lines[0], "Name")
	require.Contains(t, lines[0], "Age")
	require.Contains(t, lines[1], "-+-")
	require.Contains(t, lines[2], "Bob")
	require.Contains(t, lines[3], "Ann")
	require.Contains(t, lines[4], "Cid")
	require.True(t, strings.HasSuffix(lines[2], " 35"), "age is right aligned: %q", lines[2])
}

func TestDataTableSortIndicators(t *testing.T) {
	t.Parallel()

	e := peopleEngine(t)
	e.SetSort([]table.SortDescriptor{{ColumnID: "age", Direction: table.SortDesc}})
	out := NewDataTable(e.Result()).WithSorting(e.State().Sorting).ViewWithContext(plainContext())
	require.Contains(t, out, "Age v")

	unicode := NewDataTable(e.Result()).WithSorting(e.State().Sorting).ViewWithContext(DefaultContext().WithTheme(PlainTheme()))
	require.Contains(t, unicode, "Age ▼")
	require.Contains(t, unicode, "─┼─")

	e.ToggleSort("name", true)
	out = NewDataTable(e.Result()).WithSorting(e.State().Sorting).ViewWithContext(plainContext())
	require.Contains(t, out, "Age v1")
	require.Contains(t, out, "Name ^2")
}

func TestDataTableSelectionColumn(t *testing.T) {
	t.Parallel()

	e := peopleEngine(t)
	e.ToggleRowSelection("2")

	lines := renderLines(t, NewDataTable(e.Result()).WithSelectionColumn(true))
	require.True(t, strings.HasPrefix(lines[0], "[-]"))
	require.True(t, strings.HasPrefix(lines[2], "[ ]"))
	require.True(t, strings.HasPrefix(lines[3], "[x]"))

	e.ToggleAllRowsSelection()
	lines = renderLines(t, NewDataTable(e.Result()).WithSelectionColumn(true))
	require.True(t, strings.HasPrefix(lines[0], "[x]"))
}

func TestDataTableCursorMarker(t *testing.T) {
	t.Parallel()

	lines := renderLines(t, NewDataTable(peopleEngine(t).Result()).WithCursor(1))
	require.True(t, strings.HasPrefix(lines[2], " "))
	require.True(t, strings.HasPrefix(lines[3], ">"))
}

func TestDataTableExpandedRowShowsDetails(t *testing.T) {
	t.Parallel()

	e := peopleEngine(t)
	e.ToggleRowExpansion("1")

	lines := renderLines(t, NewDataTable(e.Result()))
	require.Len(t, lines, 8)
	require.Equal(t, "    age: 35", strings.TrimRight(lines[3], " "))
	require.Equal(t, "    id: 1", strings.TrimRight(lines[4], " "))
	require.Equal(t, "    name: Bob", strings.TrimRight(lines[5], " "))
}

func TestDataTableTruncatesWideCells(t *testing.T) {
	t.Parallel()

	e := table.New([]table.Column{{ID: "name"}}, table.DefaultOptions())
	e.SetData([]table.Record{{"name": "Alexandria"}})

	lines := renderLines(t, NewDataTable(e.Result()).WithMaxCellWidth(4))
	require.Equal(t, "Ale~", lines[2])

	e.SetColumnWidth("name", 6)
	lines = renderLines(t, NewDataTable(e.Result()).WithMaxCellWidth(4))
	require.Equal(t, "Alexa~", lines[2])
}

func TestDataTableEmptyStates(t *testing.T) {
	t.Parallel()

	e := peopleEngine(t)
	e.SetGlobalFilter("nobody")
	require.Contains(t, NewDataTable(e.Result()).ViewWithContext(plainContext()), "No matching rows")

	for _, id := range []string{"id", "name", "age"} {
		e.SetColumnVisibility(id, false)
	}
	require.Equal(t, "No visible columns", NewDataTable(e.Result()).ViewWithContext(plainContext()))
}

func TestDataTableRespectsMaxWidth(t *testing.T) {
	t.Parallel()

	out := NewDataTable(peopleEngine(t).Result()).ViewWithContext(plainContext().WithMaxWidth(8))
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 8)
	}
}

func TestPager(t *testing.T) {
	t.Parallel()

	out := NewPager(table.Meta{
		TotalRows: 21, TotalPages: 3, PageIndex: 1, PageSize: 10,
		HasNextPage: true, HasPreviousPage: true, SelectedCount: 2,
	}).ViewWithContext(plainContext())
	require.Equal(t, "< prev | Page 2 of 3 | 21 rows | 2 selected | next >", out)

	out = NewPager(table.Meta{TotalRows: 1, TotalPages: 1, PageSize: 10}).ViewWithContext(plainContext())
	require.Equal(t, "Page 1 of 1 | 1 row", out)

	out = NewPager(table.Meta{}).ViewWithContext(plainContext())
	require.Equal(t, "0 rows", out)
}

func TestAlertAndBadges(t *testing.T) {
	t.Parallel()

	alert := ErrorAlert("boom").WithTitle("Data source error").ViewWithContext(plainContext())
	require.Contains(t, alert, "Data source error")
	require.Contains(t, alert, "x boom")
	require.Contains(t, alert, "+")

	require.Equal(t, "1 row selected", SelectionBadge(1).Text())
	require.Equal(t, BadgeVariantInfo, LoadingBadge().Variant())
	require.Contains(t, LoadingBadge().ViewWithContext(plainContext()), "loading")
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	out := VStack(NewText("a"), NewText(""), NewText("b")).WithGap(1).ViewWithContext(plainContext())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "a", strings.TrimSpace(lines[0]))
	require.Equal(t, "", strings.TrimSpace(lines[1]))
	require.Equal(t, "b", strings.TrimSpace(lines[2]))

	require.Equal(t, "a b", HStack(NewText("a"), NewText("b")).WithGap(1).ViewWithContext(plainContext()))
}

func TestTableViewComposesStatus(t *testing.T) {
	t.Parallel()

	e := peopleEngine(t)
	e.SetLoading(true)
	e.SetError(errors.New("connection refused"))
	e.SetGlobalFilter("b")
	e.ToggleRowSelection("1")

	out := TableView(e.Result(), TableViewOptions{
		Title:        "People",
		Description:  "Staff directory",
		GlobalFilter: e.State().GlobalFilter,
		Cursor:       -1,
		Selectable:   true,
	}).ViewWithContext(plainContext())

	require.Contains(t, out, "People")
	require.Contains(t, out, "Staff directory")
	require.Contains(t, out, "loading")
	require.Contains(t, out, `search: "b"`)
	require.Contains(t, out, "1 row selected")
	require.Contains(t, out, "connection refused")
	require.Contains(t, out, "Bob")
	require.Contains(t, out, "Page 1 of 1")
}
