package ir

import (
	"strings"

	"github.com/pkg/errors"
)

// Single-character codes as they appear in the system catalogs. An unmapped
// code is a malformed input, never silently substituted.

var fkActions = map[string]string{
	"a": "NO ACTION",
	"r": "RESTRICT",
	"c": "CASCADE",
	"n": "SET NULL",
	"d": "SET DEFAULT",
}

func FKAction(code string) (string, error) {
	if action, ok := fkActions[code]; ok {
		return action, nil
	}
	return "", errors.Errorf("unknown foreign key action code %q", code)
}

var fkMatchTypes = map[string]string{
	"f": "FULL",
	"p": "PARTIAL",
	"s": "SIMPLE",
}

func FKMatchType(code string) (string, error) {
	if match, ok := fkMatchTypes[code]; ok {
		return match, nil
	}
	return "", errors.Errorf("unknown foreign key match type code %q", code)
}

var privileges = map[rune]string{
	'r': "SELECT",
	'a': "INSERT",
	'w': "UPDATE",
	'd': "DELETE",
	'D': "TRUNCATE",
	'x': "REFERENCES",
	't': "TRIGGER",
	'X': "EXECUTE",
}

// PrivilegeNames expands a string of privilege abbreviations to keyword
// names, preserving order.
func PrivilegeNames(codes string) ([]string, error) {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		name, ok := privileges[code]
		if !ok {
			return nil, errors.Errorf("unknown privilege abbreviation %q", code)
		}
		out = append(out, name)
	}
	return out, nil
}

// MustPrivilegeNames is for rendering privilege strings that were already
// validated at load; an unknown abbreviation here is a programming error.
func MustPrivilegeNames(codes string) []string {
	names, err := PrivilegeNames(codes)
	if err != nil {
		panic(err)
	}
	return names
}

// ColumnNameList renders a comma-separated column list for constraint keys.
func ColumnNameList(columns []string) string {
	return strings.Join(columns, ", ")
}
