package table

import "strconv"

// Row is a presentation-ready row. Rows are rebuilt on every recompute.
type Row struct {
	ID RowID
	// Original is the caller's record. The engine never modifies it.
	Original Record
	// Index is the row's position within the current page.
	Index    int
	Selected bool
	Expanded bool
}

// DeriveRowIDs returns the id of each processed record: its own id field when
// that holds a primitive, otherwise its position in processed.
func DeriveRowIDs(processed []Record, idKey string) []RowID {
	if idKey == "" {
		idKey = DefaultRowIDKey
	}
	ids := make([]RowID, len(processed))
	for i, record := range processed {
		ids[i] = deriveRowID(record, i, idKey)
	}
	return ids
}

func deriveRowID(record Record, position int, idKey string) RowID {
	if id, ok := primitiveID(record[idKey]); ok {
		return RowID(id)
	}
	return RowID(strconv.Itoa(position))
}

// MaterializeRows turns the current page into rows. ids holds the row id of
// every processed record and offset is the position of page[0] within them.
func MaterializeRows(page []Record, ids []RowID, offset int, state State) []Row {
	rows := make([]Row, 0, len(page))
	for i, record := range page {
		var id RowID
		if pos := offset + i; pos >= 0 && pos < len(ids) {
			id = ids[pos]
		} else {
			id = RowID(strconv.Itoa(offset + i))
		}
		rows = append(rows, Row{
			ID:       id,
			Original: record,
			Index:    i,
			Selected: state.Selection.Has(id),
			Expanded: state.Expanded.Has(id),
		})
	}
	return rows
}

// MaterializeColumns orders columns by state.ColumnOrder and drops hidden
// ones. Order entries naming unknown columns are ignored; columns missing from
// the order follow in definition order. Widths from state override the
// column's own.
func MaterializeColumns(columns []Column, state State) []Column {
	index := columnIndex(columns)
	placed := make(map[string]bool, len(columns))
	ordered := make([]Column, 0, len(columns))

	place := func(col Column) {
		placed[col.ID] = true
		if !state.ColumnVisible(col.ID) {
			return
		}
		if w, ok := state.ColumnWidths[col.ID]; ok {
			col.Width = w
		}
		ordered = append(ordered, col)
	}

	for _, id := range state.ColumnOrder {
		col, ok := index[id]
		if !ok || placed[id] {
			continue
		}
		place(col)
	}
	for _, col := range columns {
		if placed[col.ID] {
			continue
		}
		place(col)
	}

	return ordered
}
