package pgsql8

import (
	"github.com/pgdelta/pgdelta/lib/diff"
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

func diffViews(sourceSchema, targetSchema *ir.Schema) []output.ToSql {
	kind := diff.Kind[*ir.View]{
		Key:   func(v *ir.View) string { return v.Name },
		Equal: func(a, b *ir.View) bool { return false },
		Drop: func(v *ir.View) []output.ToSql {
			return []output.ToSql{&sql.ViewDrop{View: sql.ViewRef{Schema: sourceSchema.Name, View: v.Name}}}
		},
		Add: func(v *ir.View) []output.ToSql {
			return createView(targetSchema.Name, v)
		},
		Alter: func(source, target *ir.View) []output.ToSql {
			return diffView(sourceSchema.Name, source, target)
		},
	}
	return kind.Merge(sourceSchema.Views, targetSchema.Views)
}

// diffView applies the replace policy: any definition text difference,
// formatting included, drops and recreates the view. Matching definitions
// reconcile only grants and ownership.
func diffView(schema string, source, target *ir.View) []output.ToSql {
	ref := sql.ViewRef{Schema: schema, View: source.Name}
	if source.Definition != target.Definition {
		out := []output.ToSql{&sql.ViewDrop{View: ref}}
		return append(out, createView(schema, target)...)
	}

	out := diffGrants(ref, false, source.Grants, target.Grants)
	if source.Owner != target.Owner {
		out = append(out, &sql.ViewAlterOwner{View: ref, Role: target.Owner})
	}
	return out
}
