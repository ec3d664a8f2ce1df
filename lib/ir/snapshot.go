package ir

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Snapshot is a fully materialized, read-only representation of one
// database's schema at one point in time.
type Snapshot struct {
	Schemas []*Schema
}

// Validate checks the structural invariants the diff relies on: object
// names unique within their parent scope. All violations are reported
// together, not just the first.
func (s *Snapshot) Validate() error {
	var result *multierror.Error
	schemaNames := map[string]bool{}
	for _, schema := range s.Schemas {
		if schemaNames[schema.Name] {
			result = multierror.Append(result, errors.Errorf("duplicate schema %s", schema.Name))
		}
		schemaNames[schema.Name] = true
		result = multierror.Append(result, schema.validate())
	}
	return result.ErrorOrNil()
}

func (s *Schema) validate() error {
	var result *multierror.Error
	tableNames := map[string]bool{}
	for _, table := range s.Tables {
		if tableNames[table.Name] {
			result = multierror.Append(result, errors.Errorf("duplicate table %s.%s", s.Name, table.Name))
		}
		tableNames[table.Name] = true

		columnNames := map[string]bool{}
		for _, column := range table.Columns {
			if columnNames[column.Name] {
				result = multierror.Append(result, errors.Errorf("duplicate column %s on table %s.%s", column.Name, s.Name, table.Name))
			}
			columnNames[column.Name] = true
		}
	}
	viewNames := map[string]bool{}
	for _, view := range s.Views {
		if viewNames[view.Name] {
			result = multierror.Append(result, errors.Errorf("duplicate view %s.%s", s.Name, view.Name))
		}
		viewNames[view.Name] = true
	}
	functionSigs := map[string]bool{}
	for _, function := range s.Functions {
		sig := function.Signature()
		if functionSigs[sig] {
			result = multierror.Append(result, errors.Errorf("duplicate function %s.%s", s.Name, sig))
		}
		functionSigs[sig] = true
	}
	return result.ErrorOrNil()
}
