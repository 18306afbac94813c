package table

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func peopleColumns() []Column {
	return []Column{
		{ID: "id", Header: "ID"},
		{ID: "name", Header: "Name"},
		{ID: "age", Header: "Age"},
	}
}

func peopleRecords() []Record {
	return []Record{
		{"id": 1, "name": "Bob", "age": 35},
		{"id": 2, "name": "Ann", "age": 25},
		{"id": 3, "name": "Cid", "age": 30},
	}
}

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, fmt.Sprint(r["name"]))
	}
	return out
}

func rowNames(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, fmt.Sprint(r.Original["name"]))
	}
	return out
}

func TestSortByAgeAscending(t *testing.T) {
	t.Parallel()

	sorted := ApplySort(peopleRecords(), peopleColumns(), []SortDescriptor{{ColumnID: "age", Direction: SortAsc}})
	require.Equal(t, []string{"Ann", "Cid", "Bob"}, names(sorted))
}

func TestSortDoesNotReorderInput(t *testing.T) {
	t.Parallel()

	input := peopleRecords()
	_ = ApplySort(input, peopleColumns(), []SortDescriptor{{ColumnID: "name", Direction: SortDesc}})
	require.Equal(t, []string{"Bob", "Ann", "Cid"}, names(input))
}

func TestSortMultiKeyAndStability(t *testing.T) {
	t.Parallel()

	records := []Record{
		{"id": "a", "team": "red", "score": 2},
		{"id": "b", "team": "blue", "score": 1},
		{"id": "c", "team": "red", "score": 1},
		{"id": "d", "team": "blue", "score": 1},
		{"id": "e", "team": "red", "score": 2},
	}
	columns := []Column{{ID: "id"}, {ID: "team"}, {ID: "score"}}
	sorting := []SortDescriptor{
		{ColumnID: "team", Direction: SortAsc},
		{ColumnID: "score", Direction: SortDesc},
	}

	once := ApplySort(records, columns, sorting)
	ids := func(rs []Record) []any {
		out := make([]any, 0, len(rs))
		for _, r := range rs {
			out = append(out, r["id"])
		}
		return out
	}
	require.Equal(t, []any{"b", "d", "a", "e", "c"}, ids(once))

	twice := ApplySort(once, columns, sorting)
	require.Equal(t, ids(once), ids(twice))
}

func TestSortSkipsNonSortableColumns(t *testing.T) {
	t.Parallel()

	columns := peopleColumns()
	columns[2].DisableSort = true

	sorted := ApplySort(peopleRecords(), columns, []SortDescriptor{{ColumnID: "age"}})
	require.Equal(t, []string{"Bob", "Ann", "Cid"}, names(sorted))
}

func TestSortEmptyDescriptorsPassThrough(t *testing.T) {
	t.Parallel()

	input := peopleRecords()
	out := ApplySort(input, peopleColumns(), nil)
	require.Same(t, &input[0], &out[0])
}

func TestFilterGteKeepsInputOrder(t *testing.T) {
	t.Parallel()

	out := ApplyFilters(peopleRecords(), peopleColumns(), []FilterDescriptor{
		{ColumnID: "age", Value: 30, Operator: OpGte},
	})
	require.Equal(t, []string{"Bob", "Cid"}, names(out))
}

func TestFilterOperators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		filter FilterDescriptor
		want   []string
	}{
		{"equals number", FilterDescriptor{ColumnID: "age", Value: 25, Operator: OpEquals}, []string{"Ann"}},
		{"equals float matches int", FilterDescriptor{ColumnID: "age", Value: 25.0, Operator: OpEquals}, []string{"Ann"}},
		{"equals does not coerce strings", FilterDescriptor{ColumnID: "age", Value: "25", Operator: OpEquals}, []string{}},
		{"contains is case insensitive", FilterDescriptor{ColumnID: "name", Value: "B", Operator: OpContains}, []string{"Bob"}},
		{"starts with", FilterDescriptor{ColumnID: "name", Value: "c", Operator: OpStartsWith}, []string{"Cid"}},
		{"ends with", FilterDescriptor{ColumnID: "name", Value: "NN", Operator: OpEndsWith}, []string{"Ann"}},
		{"contains stringifies numbers", FilterDescriptor{ColumnID: "age", Value: 5, Operator: OpContains}, []string{"Bob", "Ann"}},
		{"gt", FilterDescriptor{ColumnID: "age", Value: 30, Operator: OpGt}, []string{"Bob"}},
		{"lt with numeric string", FilterDescriptor{ColumnID: "age", Value: "30", Operator: OpLt}, []string{"Ann"}},
		{"lte", FilterDescriptor{ColumnID: "age", Value: 30, Operator: OpLte}, []string{"Ann", "Cid"}},
		{"non numeric target excludes all", FilterDescriptor{ColumnID: "age", Value: "abc", Operator: OpGt}, []string{}},
		{"non numeric cell excludes", FilterDescriptor{ColumnID: "name", Value: 1, Operator: OpGt}, []string{}},
		{"unknown operator is a no-op", FilterDescriptor{ColumnID: "age", Value: 1, Operator: "between"}, []string{"Bob", "Ann", "Cid"}},
		{"empty value is a no-op", FilterDescriptor{ColumnID: "name", Value: "", Operator: OpEquals}, []string{"Bob", "Ann", "Cid"}},
		{"nil value is a no-op", FilterDescriptor{ColumnID: "name", Value: nil, Operator: OpEquals}, []string{"Bob", "Ann", "Cid"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := ApplyFilters(peopleRecords(), peopleColumns(), []FilterDescriptor{tc.filter})
			require.Equal(t, tc.want, names(out))
		})
	}
}

func TestFilterEmptyListReturnsSameSlice(t *testing.T) {
	t.Parallel()

	input := peopleRecords()
	out := ApplyFilters(input, peopleColumns(), nil)
	require.Len(t, out, len(input))
	require.Same(t, &input[0], &out[0])
}

func TestFilterSkipsNonFilterableColumns(t *testing.T) {
	t.Parallel()

	columns := peopleColumns()
	columns[1].DisableFilter = true

	out := ApplyFilters(peopleRecords(), columns, []FilterDescriptor{{ColumnID: "name", Value: "Ann", Operator: OpEquals}})
	require.Len(t, out, 3)
}

func TestFilterUnknownColumnReadsRecordKey(t *testing.T) {
	t.Parallel()

	records := []Record{{"name": "x", "extra": "keep"}, {"name": "y", "extra": "drop"}}
	out := ApplyFilters(records, peopleColumns(), []FilterDescriptor{{ColumnID: "extra", Value: "keep", Operator: OpEquals}})
	require.Equal(t, []string{"x"}, names(out))
}

func TestFilterConjunctionEqualsIntersection(t *testing.T) {
	t.Parallel()

	records := make([]Record, 0, 40)
	for i := 0; i < 40; i++ {
		records = append(records, Record{"id": i, "name": fmt.Sprintf("user-%02d", i), "age": 18 + (i*7)%50})
	}
	columns := peopleColumns()
	first := FilterDescriptor{ColumnID: "age", Value: 30, Operator: OpGte}
	second := FilterDescriptor{ColumnID: "name", Value: "1", Operator: OpContains}

	both := ApplyFilters(records, columns, []FilterDescriptor{first, second})
	a := ApplyFilters(records, columns, []FilterDescriptor{first})
	b := ApplyFilters(records, columns, []FilterDescriptor{second})

	inB := make(map[any]bool, len(b))
	for _, r := range b {
		inB[r["id"]] = true
	}
	var intersection []Record
	for _, r := range a {
		if inB[r["id"]] {
			intersection = append(intersection, r)
		}
	}

	require.NotEmpty(t, both)
	require.Equal(t, names(intersection), names(both))
}

func TestGlobalSearch(t *testing.T) {
	t.Parallel()

	out := ApplyGlobalSearch(peopleRecords(), peopleColumns(), "an")
	require.Equal(t, []string{"Ann"}, names(out))

	out = ApplyGlobalSearch(peopleRecords(), peopleColumns(), "")
	require.Len(t, out, 3)

	out = ApplyGlobalSearch(peopleRecords(), peopleColumns(), "3")
	require.Equal(t, []string{"Bob", "Cid"}, names(out))
}

func TestGlobalSearchIgnoresHiddenColumns(t *testing.T) {
	t.Parallel()

	visible := []Column{{ID: "name"}}
	out := ApplyGlobalSearch(peopleRecords(), visible, "35")
	require.Empty(t, out)
}

func TestPaginationSlices(t *testing.T) {
	t.Parallel()

	records := ApplySort(peopleRecords(), peopleColumns(), []SortDescriptor{{ColumnID: "age"}})

	page := ApplyPagination(records, &PaginationState{PageIndex: 1, PageSize: 2})
	require.Equal(t, []string{"Bob"}, names(page))

	require.Empty(t, ApplyPagination(records, &PaginationState{PageIndex: 9, PageSize: 2}))
	require.Empty(t, ApplyPagination(records, &PaginationState{PageIndex: -1, PageSize: 2}))
	require.Empty(t, ApplyPagination(records, &PaginationState{PageIndex: 0, PageSize: 0}))
	require.Len(t, ApplyPagination(records, nil), 3)
}

func TestPaginationHugePageIndexIsEmpty(t *testing.T) {
	t.Parallel()

	huge := &PaginationState{PageIndex: math.MaxInt/10 + 1, PageSize: 10}
	require.Equal(t, math.MaxInt, huge.Offset())
	require.NotPanics(t, func() {
		require.Empty(t, ApplyPagination(peopleRecords(), huge))
	})
	require.Empty(t, ApplyPagination(nil, &PaginationState{PageIndex: math.MaxInt, PageSize: math.MaxInt}))
	require.Equal(t, 0, (&PaginationState{PageIndex: -3, PageSize: 10}).Offset())
}

func TestPaginationCoversEveryRowOnce(t *testing.T) {
	t.Parallel()

	records := make([]Record, 0, 23)
	for i := 0; i < 23; i++ {
		records = append(records, Record{"id": i, "name": fmt.Sprintf("n%02d", (i*11)%23), "age": i % 4})
	}
	sorted := ApplySort(records, peopleColumns(), []SortDescriptor{{ColumnID: "age"}, {ColumnID: "name", Direction: SortDesc}})

	const pageSize = 5
	pages := TotalPages(len(sorted), &PaginationState{PageSize: pageSize})
	require.Equal(t, 5, pages)

	var joined []Record
	for i := 0; i < pages; i++ {
		joined = append(joined, ApplyPagination(sorted, &PaginationState{PageIndex: i, PageSize: pageSize})...)
	}
	require.Equal(t, names(sorted), names(joined))
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, TotalPages(100, nil))
	require.Equal(t, 0, TotalPages(0, &PaginationState{PageSize: 10}))
	require.Equal(t, 1, TotalPages(10, &PaginationState{PageSize: 10}))
	require.Equal(t, 2, TotalPages(11, &PaginationState{PageSize: 10}))
}

func TestRecomputeScenario(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	state := NewState(peopleColumns(), opts)
	state.Sorting = []SortDescriptor{{ColumnID: "age", Direction: SortAsc}}
	state.Pagination = &PaginationState{PageIndex: 1, PageSize: 2}

	res := Recompute(Input{Records: peopleRecords(), Columns: peopleColumns(), State: state, Options: opts})

	require.Equal(t, []string{"Bob"}, rowNames(res.Rows))
	require.Equal(t, RowID("1"), res.Rows[0].ID)
	require.Equal(t, 0, res.Rows[0].Index)
	require.Equal(t, 3, res.Meta.TotalRows)
	require.Equal(t, 2, res.Meta.TotalPages)
	require.False(t, res.Meta.HasNextPage)
	require.True(t, res.Meta.HasPreviousPage)
	require.Equal(t, []RowID{"2", "3", "1"}, res.ProcessedIDs)
}

func TestRecomputeIsDeterministic(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	state := NewState(peopleColumns(), opts)
	state.Sorting = []SortDescriptor{{ColumnID: "name", Direction: SortDesc}}
	state.GlobalFilter = "b"

	in := Input{Records: peopleRecords(), Columns: peopleColumns(), State: state, Options: opts}
	require.Equal(t, Recompute(in), Recompute(in))
}

func TestRecomputeDisabledStagesPassThrough(t *testing.T) {
	t.Parallel()

	opts := Options{}
	state := NewState(peopleColumns(), DefaultOptions())
	state.Sorting = []SortDescriptor{{ColumnID: "age"}}
	state.Filters = []FilterDescriptor{{ColumnID: "age", Value: 99, Operator: OpGt}}
	state.GlobalFilter = "zzz"
	state.Pagination = &PaginationState{PageIndex: 5, PageSize: 1}

	res := Recompute(Input{Records: peopleRecords(), Columns: peopleColumns(), State: state, Options: opts})
	require.Equal(t, []string{"Bob", "Ann", "Cid"}, rowNames(res.Rows))
	require.Equal(t, 1, res.Meta.TotalPages)
	require.False(t, res.Meta.HasNextPage)
	require.False(t, res.Meta.HasPreviousPage)
}

func TestRecomputePassesThroughCallerFlags(t *testing.T) {
	t.Parallel()

	fetchErr := fmt.Errorf("upstream unavailable")
	res := Recompute(Input{
		Columns: peopleColumns(),
		State:   NewState(peopleColumns(), DefaultOptions()),
		Options: DefaultOptions(),
		Loading: true,
		Error:   fetchErr,
	})
	require.True(t, res.Meta.Loading)
	require.Same(t, fetchErr, res.Meta.Error)
	require.Empty(t, res.Rows)
	require.Equal(t, 0, res.Meta.TotalPages)
}

func TestMaterializeColumnsAppliesOrderAndVisibility(t *testing.T) {
	t.Parallel()

	columns := peopleColumns()
	state := NewState(columns, DefaultOptions())
	state = state.WithColumnOrder([]string{"age", "ghost", "id", "age"})
	state = state.WithColumnVisibility("id", false)
	state = state.WithColumnWidth("name", 12)

	out := MaterializeColumns(columns, state)
	ids := make([]string, 0, len(out))
	for _, c := range out {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []string{"age", "name"}, ids)
	require.Equal(t, 12, out[1].Width)
}

func TestMaterializeColumnsHonoursInitialHidden(t *testing.T) {
	t.Parallel()

	columns := peopleColumns()
	columns[0].Hidden = true

	out := MaterializeColumns(columns, NewState(columns, DefaultOptions()))
	require.Len(t, out, 2)
	require.Equal(t, "name", out[0].ID)
}

func TestDeriveRowIDsFallsBackToPosition(t *testing.T) {
	t.Parallel()

	records := []Record{
		{"id": "abc"},
		{"id": 7},
		{"id": 2.0},
		{"id": 2.5},
		{"id": []int{1}},
		{"name": "no id"},
		{"id": ""},
	}
	ids := DeriveRowIDs(records, "")
	require.Equal(t, []RowID{"abc", "7", "2", "3", "4", "5", "6"}, ids)
}

func TestMaterializeRowsFlags(t *testing.T) {
	t.Parallel()

	state := NewState(peopleColumns(), DefaultOptions())
	state = state.WithSelection(NewRowSet("2"))
	state = state.WithExpansionToggled("3")

	records := peopleRecords()
	ids := DeriveRowIDs(records, "id")
	rows := MaterializeRows(records[1:], ids, 1, state)

	require.Len(t, rows, 2)
	require.True(t, rows[0].Selected)
	require.False(t, rows[0].Expanded)
	require.True(t, rows[1].Expanded)
	require.Equal(t, 1, rows[1].Index)
	require.True(t, slices.Equal([]RowID{"2", "3"}, []RowID{rows[0].ID, rows[1].ID}))
}
