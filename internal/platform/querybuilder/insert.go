package querybuilder

import (
	"fmt"
	"strings"
)

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL such as ON CONFLICT or RETURNING clauses.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var w sqlWriter
	w.WriteString("INSERT INTO ")
	w.WriteString(b.table)
	w.WriteString(" (")
	w.WriteString(strings.Join(b.columns, ", "))
	w.WriteString(") VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.WriteString(", ")
		}
		w.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.WriteString(", ")
			}
			w.bind(value)
		}
		w.WriteString(")")
	}
	if b.suffix != "" {
		w.WriteString(" ")
		w.WriteString(b.suffix)
	}

	return w.String(), w.args, nil
}

// UpsertSuffix builds "ON CONFLICT (keys) DO UPDATE SET col = EXCLUDED.col"
// for every column that is not part of the conflict key.
func UpsertSuffix(conflict []string, columns []string) string {
	key := make(map[string]struct{}, len(conflict))
	for _, c := range conflict {
		key[c] = struct{}{}
	}

	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := key[c]; ok {
			continue
		}
		sets = append(sets, c+" = EXCLUDED."+c)
	}

	clause := "ON CONFLICT (" + strings.Join(conflict, ", ") + ")"
	if len(sets) == 0 {
		return clause + " DO NOTHING"
	}
	return clause + " DO UPDATE SET " + strings.Join(sets, ", ")
}
