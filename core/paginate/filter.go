package paginate

import (
	sq "github.com/Masterminds/squirrel"
)

// compileFilters folds raw filter statements into one predicate per column.
// A column must appear both in the request and in the allowed-operators map;
// everything else is ignored. Statements with an unrecognized inner operator,
// or with an operator outside the column's allowed set, are dropped without
// error. When several statements target the same column the last one wins.
func compileFilters(filter map[string][]string, allowed map[string][]Operator) map[string]sq.Sqlizer {
	if len(filter) == 0 || len(allowed) == 0 {
		return nil
	}

	predicates := make(map[string]sq.Sqlizer)
	for column, statements := range filter {
		operators, ok := allowed[column]
		if !ok {
			continue
		}
		for _, raw := range statements {
			tokens := Tokenize(raw)
			if len(tokens) == 0 {
				continue
			}
			outer, inner, value := Operator(tokens[0]), Operator(tokens[1]), tokens[2]

			if !inner.Valid() || !allowedOperator(inner, operators) {
				continue
			}
			if outer != "" && outer.Valid() && !allowedOperator(outer, operators) {
				continue
			}

			predicate := inner.Predicate(column, value)
			if predicate == nil {
				continue
			}
			// only negation composes; any other recognized outer
			// operator leaves the inner predicate as is
			if outer == OpNot {
				predicate = Not(predicate)
			}
			predicates[column] = predicate
		}
	}
	return predicates
}

func allowedOperator(op Operator, allowed []Operator) bool {
	for _, a := range allowed {
		if a == op {
			return true
		}
	}
	return false
}
