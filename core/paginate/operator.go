package paginate

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Operator is one symbol of the filter DSL. The set is closed; symbols are
// looked up by exact string match.
type Operator string

const (
	OpEq   Operator = "$eq"
	OpGt   Operator = "$gt"
	OpGte  Operator = "$gte"
	OpIn   Operator = "$in"
	OpNull Operator = "$null"
	OpLt   Operator = "$lt"
	OpLte  Operator = "$lte"
	OpNot  Operator = "$not"
)

// Valid reports whether o is a recognized operator symbol.
func (o Operator) Valid() bool {
	switch o {
	case OpEq, OpGt, OpGte, OpIn, OpNull, OpLt, OpLte, OpNot:
		return true
	}
	return false
}

// Predicate builds the comparison bound to column. Values stay text; the
// executor's comparison semantics decide how they are typed. $in splits its
// value on commas into a set membership test, $null ignores the value.
func (o Operator) Predicate(column, value string) sq.Sqlizer {
	switch o {
	case OpEq:
		return sq.Eq{column: value}
	case OpGt:
		return sq.Gt{column: value}
	case OpGte:
		return sq.GtOrEq{column: value}
	case OpLt:
		return sq.Lt{column: value}
	case OpLte:
		return sq.LtOrEq{column: value}
	case OpIn:
		return sq.Eq{column: strings.Split(value, ",")}
	case OpNull:
		return sq.Eq{column: nil}
	case OpNot:
		return Not(sq.Eq{column: value})
	}
	return nil
}

type notExpr struct {
	expr sq.Sqlizer
}

func (n notExpr) ToSql() (string, []interface{}, error) {
	query, args, err := n.expr.ToSql()
	if err != nil || query == "" {
		return query, args, err
	}
	return "NOT (" + query + ")", args, nil
}

// Not negates a predicate.
func Not(expr sq.Sqlizer) sq.Sqlizer {
	return notExpr{expr: expr}
}
