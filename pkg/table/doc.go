// Package table implements a headless tabular data engine.
//
// # Overview
//
// The engine turns a caller-owned slice of records into presentation-ready rows
// and columns. Processing is a fixed pipeline of pure stages:
//
//	filter → global search → sort → paginate → materialize
//
// State (sorting, filters, search text, pagination, selection, expansion and
// column layout) lives in an immutable State value. Every action on an Engine
// produces a new State and recomputes the pipeline eagerly:
//
//	eng := table.New(columns, table.DefaultOptions())
//	eng.SetData(records)
//	eng.SetSort([]table.SortDescriptor{{ColumnID: "age", Direction: table.SortAsc}})
//	res := eng.Result()
//
// Callers that prefer to own state can skip the Engine entirely and call
// Recompute with their own State.
//
// # Failure model
//
// Nothing in this package returns an error. Empty inputs, unknown operators,
// non-numeric comparisons, unknown column ids and out-of-range pages all
// degrade to a no-op or an empty result. The Error and Loading values in Meta
// are supplied by the caller and passed through untouched.
//
// # Ownership
//
// Records are borrowed. The engine reads them through column accessors and
// keeps a reference only until the next SetData call.
package table
