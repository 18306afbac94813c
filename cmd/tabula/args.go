package main

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// columnSet answers whether a column id exists.
type columnSet map[string]struct{}

func newColumnSet(columns []table.Column) columnSet {
	set := make(columnSet, len(columns))
	for _, c := range columns {
		set[c.ID] = struct{}{}
	}
	return set
}

func (s columnSet) require(flag, value, id string) error {
	if _, ok := s[id]; !ok {
		return tabulaerrors.NewArgumentError(flag, value, fmt.Sprintf("unknown column %q", id))
	}
	return nil
}

// parseSort parses "id" or "id:asc|desc".
func parseSort(value string, columns columnSet) (table.SortDescriptor, error) {
	id, dir, _ := strings.Cut(value, ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return table.SortDescriptor{}, tabulaerrors.NewArgumentError("sort", value, "expected id[:asc|desc]")
	}
	if err := columns.require("sort", value, id); err != nil {
		return table.SortDescriptor{}, err
	}
	direction, ok := table.ParseSortDirection(dir)
	if !ok {
		return table.SortDescriptor{}, tabulaerrors.NewArgumentError("sort", value, fmt.Sprintf("unknown direction %q", dir))
	}
	return table.SortDescriptor{ColumnID: id, Direction: direction}, nil
}

// parseFilter parses "id:operator:value". The value is read as a YAML scalar
// so numbers and booleans compare by type.
func parseFilter(value string, columns columnSet) (table.FilterDescriptor, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 || strings.TrimSpace(parts[0]) == "" {
		return table.FilterDescriptor{}, tabulaerrors.NewArgumentError("filter", value, "expected id:operator:value")
	}
	id := strings.TrimSpace(parts[0])
	if err := columns.require("filter", value, id); err != nil {
		return table.FilterDescriptor{}, err
	}
	op := table.FilterOperator(strings.TrimSpace(parts[1]))
	if !op.Known() {
		names := make([]string, 0, len(table.Operators()))
		for _, o := range table.Operators() {
			names = append(names, string(o))
		}
		return table.FilterDescriptor{}, tabulaerrors.NewArgumentError("filter", value, fmt.Sprintf("unknown operator %q (expected one of %s)", op, strings.Join(names, ", ")))
	}
	return table.FilterDescriptor{ColumnID: id, Operator: op, Value: parseScalar(parts[2])}, nil
}

func parseScalar(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case string, bool, int, float64:
		return v
	default:
		return raw
	}
}

// parseColumnList parses a comma separated list of column ids.
func parseColumnList(flag, value string, columns columnSet) ([]string, error) {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if err := columns.require(flag, value, id); err != nil {
			return nil, err
		}
		if slices.Contains(ids, id) {
			return nil, tabulaerrors.NewArgumentError(flag, value, fmt.Sprintf("column %q listed twice", id))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
