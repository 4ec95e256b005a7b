package querybuilder

import "strings"

// Condition renders one WHERE predicate, numbering its placeholders from
// the shared argument list.
type Condition interface {
	appendSQL(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" = ")
	w.bind(c.value)
}

type ilikeCondition struct {
	column  string
	pattern string
}

// ILike matches column case-insensitively against a LIKE pattern.
func ILike(column, pattern string) Condition {
	return ilikeCondition{column: column, pattern: pattern}
}

func (c ilikeCondition) appendSQL(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" ILIKE ")
	w.bind(c.pattern)
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) appendSQL(w *sqlWriter) {
	if len(c.values) == 0 {
		w.WriteString("1=0")
		return
	}
	w.WriteString(c.column)
	w.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.WriteString(", ")
		}
		w.bind(v)
	}
	w.WriteString(")")
}

type orCondition struct {
	parts []Condition
}

// Or joins conditions with OR inside parentheses.
func Or(parts ...Condition) Condition {
	return orCondition{parts: parts}
}

func (c orCondition) appendSQL(w *sqlWriter) {
	if len(c.parts) == 0 {
		w.WriteString("1=0")
		return
	}
	w.WriteString("(")
	for i, p := range c.parts {
		if i > 0 {
			w.WriteString(" OR ")
		}
		p.appendSQL(w)
	}
	w.WriteString(")")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr inlines raw SQL; each '?' consumes one of args.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *sqlWriter) {
	w.expr(c.expr, c.args)
}

type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) bind(v any) {
	w.args = append(w.args, v)
	w.WriteString(placeholder(len(w.args)))
}

func (w *sqlWriter) expr(expr string, exprArgs []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.WriteByte(expr[i])
	}
}

func (w *sqlWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}
