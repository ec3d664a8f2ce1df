package pgsql8

import (
	"github.com/pgdelta/pgdelta/lib/diff"
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

func diffFunctions(sourceSchema, targetSchema *ir.Schema) []output.ToSql {
	bySignature := func(a, b *ir.Function) bool { return a.Signature() < b.Signature() }
	kind := diff.Kind[*ir.Function]{
		Key:   func(f *ir.Function) string { return f.Signature() },
		Equal: func(a, b *ir.Function) bool { return false },
		Drop: func(f *ir.Function) []output.ToSql {
			return []output.ToSql{&sql.FunctionDrop{Function: sql.FunctionRef{Schema: sourceSchema.Name, Signature: f.Signature()}}}
		},
		Add: func(f *ir.Function) []output.ToSql {
			return createFunction(targetSchema.Name, f)
		},
		Alter: func(source, target *ir.Function) []output.ToSql {
			return diffFunction(sourceSchema.Name, source, target)
		},
	}
	return kind.Merge(
		sortedCopy(sourceSchema.Functions, bySignature),
		sortedCopy(targetSchema.Functions, bySignature),
	)
}

// diffFunction mirrors the view replace policy: definitions are compared
// byte for byte and any difference recreates the function.
func diffFunction(schema string, source, target *ir.Function) []output.ToSql {
	ref := sql.FunctionRef{Schema: schema, Signature: source.Signature()}
	if source.Definition != target.Definition {
		out := []output.ToSql{&sql.FunctionDrop{Function: ref}}
		return append(out, createFunction(schema, target)...)
	}

	out := diffGrants(ref, true, source.Grants, target.Grants)
	if source.Owner != target.Owner {
		out = append(out, &sql.FunctionAlterOwner{Function: ref, Role: target.Owner})
	}
	return out
}
