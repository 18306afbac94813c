package definition

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	columnIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("column_id", func(fl validator.FieldLevel) bool {
			return columnIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("filter_op", func(fl validator.FieldLevel) bool {
			return table.FilterOperator(fl.Field().String()).Known()
		})

		_ = v.RegisterValidation("sort_dir", func(fl validator.FieldLevel) bool {
			_, ok := table.ParseSortDirection(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("selection_mode", func(fl validator.FieldLevel) bool {
			_, ok := table.ParseSelectionMode(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a definition.
func Validate(def *Definition) error {
	if def == nil {
		return tabulaerrors.NewValidationError("definition", "definition is nil", nil)
	}

	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}

	if len(def.Records) > 0 && def.Data != "" {
		return tabulaerrors.NewValidationError("data", "records and data cannot both be set", nil)
	}

	known := make(map[string]int, len(def.Columns))
	for i, col := range def.Columns {
		if _, exists := known[col.ID]; exists {
			return tabulaerrors.NewValidationError(fmt.Sprintf("columns[%d].id", i), fmt.Sprintf("duplicate column id %q", col.ID), nil)
		}
		known[col.ID] = i
	}

	for i, id := range def.ColumnOrder {
		if _, ok := known[id]; !ok {
			return tabulaerrors.NewValidationError(fmt.Sprintf("column_order[%d]", i), fmt.Sprintf("references unknown column %q", id), nil)
		}
	}
	for i, s := range def.Initial.Sort {
		if _, ok := known[s.Column]; !ok {
			return tabulaerrors.NewValidationError(fmt.Sprintf("initial.sort[%d].column", i), fmt.Sprintf("references unknown column %q", s.Column), nil)
		}
	}
	for i, f := range def.Initial.Filters {
		if _, ok := known[f.Column]; !ok {
			return tabulaerrors.NewValidationError(fmt.Sprintf("initial.filters[%d].column", i), fmt.Sprintf("references unknown column %q", f.Column), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into ValidationError.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tabulaerrors.NewValidationError(field, msg, err)
	}

	return tabulaerrors.NewValidationError("definition", err.Error(), err)
}

// yamlishFieldName drops the root struct name from a namespace such as
// Definition.columns[0].id.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
