package pgsql8

import (
	"github.com/pgdelta/pgdelta/lib/diff"
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

// DiffSnapshots produces the ordered DDL migrating a database matching
// source to one matching target. Schemas present on only one side are
// created or dropped wholesale; schemas on both sides are diffed object
// kind by object kind.
func DiffSnapshots(source, target *ir.Snapshot) []output.ToSql {
	byName := func(a, b *ir.Schema) bool { return a.Name < b.Name }
	kind := diff.Kind[*ir.Schema]{
		Key: func(s *ir.Schema) string { return s.Name },
		// present-in-both always recurses; the recursion emits nothing
		// when the schemas match
		Equal: func(a, b *ir.Schema) bool { return false },
		Drop: func(s *ir.Schema) []output.ToSql {
			return append(
				[]output.ToSql{&sql.SchemaBanner{Schema: s.Name}},
				&sql.SchemaDrop{Schema: s.Name, Cascade: true},
			)
		},
		Add: func(s *ir.Schema) []output.ToSql {
			out := []output.ToSql{
				&sql.SchemaBanner{Schema: s.Name},
				&sql.SchemaCreate{Schema: s.Name},
			}
			return append(out, dumpSchemaObjects(s)...)
		},
		Alter: diffSchema,
	}
	return kind.Merge(
		sortedCopy(source.Schemas, byName),
		sortedCopy(target.Schemas, byName),
	)
}

func diffSchema(source, target *ir.Schema) []output.ToSql {
	out := []output.ToSql{&sql.SchemaBanner{Schema: source.Name}}
	out = append(out, &sql.SectionComment{Section: "TABLES"})
	out = append(out, diffTables(source, target)...)
	out = append(out, sql.Blank{})
	out = append(out, &sql.SectionComment{Section: "VIEWS"})
	out = append(out, diffViews(source, target)...)
	out = append(out, sql.Blank{})
	out = append(out, &sql.SectionComment{Section: "FUNCTIONS"})
	out = append(out, diffFunctions(source, target)...)
	return out
}
