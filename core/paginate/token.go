package paginate

import (
	"regexp"
	"strings"
)

var operatorMarker = regexp.MustCompile(`\$\w+:`)

// Tokenize splits one raw filter value into its normalized token triple
// [outer operator, inner operator, value], with "" as the placeholder for
// absent slots. It returns nil when the raw value does not normalize to a
// triple. Wire format: "[$outerOp:]$innerOp:value", a bare "value" (implied
// $eq), or a bare "$null".
//
// A value that itself contains a "$word:"-shaped substring is
// indistinguishable from an operator marker and will be misparsed; such
// values are not permissible filter input.
func Tokenize(raw string) []string {
	var tokens []string
	markers := operatorMarker.FindAllString(raw, -1)
	if len(markers) > 0 {
		value := raw
		for _, marker := range markers {
			value = strings.Replace(value, marker, "", 1)
			tokens = append(tokens, strings.TrimSuffix(marker, ":"))
		}
		tokens = append(tokens, value)
	} else {
		tokens = []string{raw}
	}

	switch len(tokens) {
	case 1:
		if tokens[0] == string(OpNull) {
			return []string{"", tokens[0], ""}
		}
		return []string{"", string(OpEq), tokens[0]}
	case 2:
		// a trailing "$null" is the inner operator of a wrapped null
		// check, not a value
		if tokens[1] == string(OpNull) {
			return []string{tokens[0], tokens[1], ""}
		}
		return []string{"", tokens[0], tokens[1]}
	case 3:
		return tokens
	}
	return nil
}
