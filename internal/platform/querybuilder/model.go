package querybuilder

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// InsertModel builds a single-row insert from the struct's db tags.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels builds one multi-row insert. Every model must share the
// same struct type.
func InsertModels(table string, models []any, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert models are required")
	}

	b := InsertInto(table).Suffix(suffix)
	var first []string
	for i, m := range models {
		cols, vals, err := columnsAndValuesFromModel(m)
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			first = cols
			b.Columns(cols...)
		} else if len(cols) != len(first) {
			return "", nil, fmt.Errorf("model %d has %d columns, expected %d", i, len(cols), len(first))
		}
		b.Values(vals...)
	}
	return b.ToSQL()
}

// ModelColumns lists the db column names of a model in field order.
func ModelColumns(model any) ([]string, error) {
	cols, _, err := columnsAndValuesFromModel(model)
	return cols, err
}

// ModelValues returns the values of the named db columns in the order given.
func ModelValues(model any, columns ...string) ([]any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(columns))
	for _, col := range columns {
		idx := slices.Index(cols, col)
		if idx < 0 {
			return nil, fmt.Errorf("model has no column %q", col)
		}
		out = append(out, vals[idx])
	}
	return out, nil
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		col := strings.TrimSpace(strings.Split(field.Tag.Get("db"), ",")[0])
		if col == "" || col == "-" {
			continue
		}
		if strings.Contains(field.Tag.Get("insert"), "omit") {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
