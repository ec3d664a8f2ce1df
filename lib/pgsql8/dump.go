package pgsql8

import (
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

// DumpSnapshot renders full DDL for every schema in a single snapshot.
func DumpSnapshot(snap *ir.Snapshot) []output.ToSql {
	out := []output.ToSql{}
	for _, schema := range snap.Schemas {
		out = append(out, &sql.SchemaBanner{Schema: schema.Name})
		out = append(out, dumpSchemaObjects(schema)...)
	}
	return out
}

// dumpSchemaObjects emits full DDL for everything a schema contains:
// tables first, then every foreign key in a second pass so that referenced
// tables exist before any constraint names them, then views and functions.
func dumpSchemaObjects(schema *ir.Schema) []output.ToSql {
	out := []output.ToSql{}
	for _, table := range schema.Tables {
		out = append(out, createTable(schema.Name, table)...)
		out = append(out, sql.Blank{})
	}

	for _, table := range schema.Tables {
		ref := sql.TableRef{Schema: schema.Name, Table: table.Name}
		for _, fk := range table.ForeignKeys {
			out = append(out, &sql.ConstraintAdd{Table: ref, Constraint: fk.Name, Definition: fk.Definition})
		}
	}
	out = append(out, sql.Blank{})

	for _, view := range schema.Views {
		out = append(out, createView(schema.Name, view)...)
		out = append(out, sql.Blank{})
	}

	for _, function := range schema.Functions {
		out = append(out, createFunction(schema.Name, function)...)
		out = append(out, sql.Blank{})
	}
	return out
}

// createTable renders the full creation form: the CREATE TABLE with inline
// primary key, unique keys and checks, then the table's non-constraint
// indexes and triggers, grants, and ownership.
func createTable(schema string, table *ir.Table) []output.ToSql {
	ref := sql.TableRef{Schema: schema, Table: table.Name}

	columns := make([]sql.ColumnDefinition, len(table.Columns))
	for i, col := range table.Columns {
		columns[i] = columnDefinition(col)
	}

	constraints := []sql.TableConstraint{}
	if table.PrimaryKey != nil {
		constraints = append(constraints, sql.TableConstraint{Constraint: table.PrimaryKey.Name, Definition: table.PrimaryKey.Definition})
	}
	for _, uk := range table.UniqueKeys {
		constraints = append(constraints, sql.TableConstraint{Constraint: uk.Name, Definition: uk.Definition})
	}
	for _, check := range table.Checks {
		constraints = append(constraints, sql.TableConstraint{Constraint: check.Name, Definition: check.Definition})
	}

	out := []output.ToSql{&sql.TableCreate{Table: ref, Columns: columns, Constraints: constraints}}
	for _, index := range table.NonConstraintIndexes() {
		out = append(out, &sql.IndexCreate{Definition: index.Definition})
	}
	for _, trigger := range table.NonConstraintTriggers() {
		out = append(out, &sql.TriggerCreate{Definition: trigger.Definition})
	}
	for _, grant := range table.Grants {
		out = append(out, &sql.Grant{Object: ref, Privileges: grant.PrivilegeNames(), Role: grant.Role})
	}
	out = append(out, &sql.TableAlterOwner{Table: ref, Role: table.Owner})
	return out
}

func createView(schema string, view *ir.View) []output.ToSql {
	ref := sql.ViewRef{Schema: schema, View: view.Name}
	out := []output.ToSql{&sql.ViewCreate{View: ref, Query: view.Definition}}
	for _, trigger := range view.NonConstraintTriggers() {
		out = append(out, &sql.TriggerCreate{Definition: trigger.Definition})
	}
	for _, grant := range view.Grants {
		out = append(out, &sql.Grant{Object: ref, Privileges: grant.PrivilegeNames(), Role: grant.Role})
	}
	out = append(out, &sql.ViewAlterOwner{View: ref, Role: view.Owner})
	return out
}

func createFunction(schema string, function *ir.Function) []output.ToSql {
	ref := sql.FunctionRef{Schema: schema, Signature: function.Signature()}
	out := []output.ToSql{}
	// aggregates have no pg_get_functiondef form; their grants and owner
	// still apply
	// TODO(feat) reconstruct CREATE AGGREGATE from the catalogs
	if function.Definition != "" {
		out = append(out, &sql.FunctionCreate{Definition: function.Definition})
	}
	for _, grant := range function.Grants {
		out = append(out, &sql.Grant{Object: ref, Function: true, Privileges: grant.PrivilegeNames(), Role: grant.Role})
	}
	out = append(out, &sql.FunctionAlterOwner{Function: ref, Role: function.Owner})
	return out
}
