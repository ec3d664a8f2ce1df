package pgsql8

import (
	"github.com/pgdelta/pgdelta/lib/diff"
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

func diffTables(sourceSchema, targetSchema *ir.Schema) []output.ToSql {
	kind := diff.Kind[*ir.Table]{
		Key:   func(t *ir.Table) string { return t.Name },
		Equal: func(a, b *ir.Table) bool { return false },
		Drop: func(t *ir.Table) []output.ToSql {
			return []output.ToSql{&sql.TableDrop{Table: sql.TableRef{Schema: sourceSchema.Name, Table: t.Name}}}
		},
		Add: func(t *ir.Table) []output.ToSql {
			return createTable(targetSchema.Name, t)
		},
		Alter: func(source, target *ir.Table) []output.ToSql {
			return diffTable(sourceSchema.Name, source, target)
		},
	}
	return kind.Merge(sourceSchema.Tables, targetSchema.Tables)
}

// diffTable reconciles one table present in both snapshots: columns first
// (the one kind with a true alter path), then the primary key, unique keys,
// checks, non-constraint indexes and triggers, grants, and ownership.
// Column physical order is not reconciled.
func diffTable(schema string, source, target *ir.Table) []output.ToSql {
	table := sql.TableRef{Schema: schema, Table: source.Name}
	out := []output.ToSql{}

	out = append(out, diffColumns(table, source, target)...)
	out = append(out, diffPrimaryKey(table, source.PrimaryKey, target.PrimaryKey)...)

	uniqueKeys := diff.Kind[*ir.UniqueKey]{
		Key:   func(uk *ir.UniqueKey) string { return uk.Name },
		Equal: func(a, b *ir.UniqueKey) bool { return a.Equals(b) },
		Drop: func(uk *ir.UniqueKey) []output.ToSql {
			return []output.ToSql{&sql.ConstraintDrop{Table: table, Constraint: uk.Name}}
		},
		Add: func(uk *ir.UniqueKey) []output.ToSql {
			return []output.ToSql{&sql.ConstraintAdd{Table: table, Constraint: uk.Name, Definition: uk.Definition}}
		},
	}
	out = append(out, uniqueKeys.Merge(source.UniqueKeys, target.UniqueKeys)...)

	checks := diff.Kind[*ir.Check]{
		Key:   func(c *ir.Check) string { return c.Name },
		Equal: func(a, b *ir.Check) bool { return a.Equals(b) },
		Drop: func(c *ir.Check) []output.ToSql {
			return []output.ToSql{&sql.ConstraintDrop{Table: table, Constraint: c.Name}}
		},
		Add: func(c *ir.Check) []output.ToSql {
			return []output.ToSql{&sql.ConstraintAdd{Table: table, Constraint: c.Name, Definition: c.Definition}}
		},
	}
	out = append(out, checks.Merge(source.Checks, target.Checks)...)

	indexes := diff.Kind[*ir.Index]{
		Key:   func(i *ir.Index) string { return i.Name },
		Equal: func(a, b *ir.Index) bool { return a.Equals(b) },
		Drop: func(i *ir.Index) []output.ToSql {
			return []output.ToSql{&sql.IndexDrop{Index: sql.IndexRef{Schema: schema, Index: i.Name}}}
		},
		Add: func(i *ir.Index) []output.ToSql {
			return []output.ToSql{&sql.IndexCreate{Definition: i.Definition}}
		},
	}
	out = append(out, indexes.Merge(source.NonConstraintIndexes(), target.NonConstraintIndexes())...)

	triggers := diff.Kind[*ir.Trigger]{
		Key:   func(t *ir.Trigger) string { return t.Name },
		Equal: func(a, b *ir.Trigger) bool { return a.Equals(b) },
		Drop: func(t *ir.Trigger) []output.ToSql {
			return []output.ToSql{&sql.TriggerDrop{Relation: table, Trigger: t.Name}}
		},
		Add: func(t *ir.Trigger) []output.ToSql {
			return []output.ToSql{&sql.TriggerCreate{Definition: t.Definition}}
		},
	}
	out = append(out, triggers.Merge(source.NonConstraintTriggers(), target.NonConstraintTriggers())...)

	out = append(out, diffGrants(table, false, source.Grants, target.Grants)...)

	if source.Owner != target.Owner {
		out = append(out, &sql.TableAlterOwner{Table: table, Role: target.Owner})
	}
	return out
}

func diffColumns(table sql.TableRef, source, target *ir.Table) []output.ToSql {
	byName := func(a, b *ir.Column) bool { return a.Name < b.Name }
	kind := diff.Kind[*ir.Column]{
		Key:   func(c *ir.Column) string { return c.Name },
		Equal: func(a, b *ir.Column) bool { return a.Equals(b) },
		Drop: func(c *ir.Column) []output.ToSql {
			return []output.ToSql{&sql.ColumnDrop{Table: table, Column: c.Name}}
		},
		Add: func(c *ir.Column) []output.ToSql {
			return []output.ToSql{&sql.ColumnAdd{Table: table, Definition: columnDefinition(c)}}
		},
		// a changed column keeps its name and restates its definition;
		// a renamed column is an unrelated drop plus add
		Alter: func(old, new *ir.Column) []output.ToSql {
			return []output.ToSql{&sql.ColumnAlter{Table: table, Definition: columnDefinition(new)}}
		},
	}
	return kind.Merge(
		sortedCopy(source.Columns, byName),
		sortedCopy(target.Columns, byName),
	)
}

func diffPrimaryKey(table sql.TableRef, source, target *ir.PrimaryKey) []output.ToSql {
	switch {
	case source == nil && target == nil:
		return nil
	case source == nil:
		return []output.ToSql{&sql.ConstraintAdd{Table: table, Constraint: target.Name, Definition: target.Definition}}
	case target == nil:
		return []output.ToSql{&sql.ConstraintDrop{Table: table, Constraint: source.Name}}
	case source.Equals(target):
		return nil
	}
	return []output.ToSql{
		&sql.ConstraintDrop{Table: table, Constraint: source.Name},
		&sql.ConstraintAdd{Table: table, Constraint: target.Name, Definition: target.Definition},
	}
}
