package ir

import (
	"fmt"
	"strings"
)

// Function is a stored routine or aggregate. Aggregates have no
// pg_get_functiondef form and load with an empty Definition.
type Function struct {
	Name        string
	Owner       string
	ArgTypes    []string
	ReturnType  string
	Language    string
	IsAggregate bool
	IsWindow    bool
	Grants      []*Grant
	Definition  string
}

// Signature identifies the function within its schema; overloads differ by
// argument type list.
func (f *Function) Signature() string {
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(f.ArgTypes, ", "))
}
