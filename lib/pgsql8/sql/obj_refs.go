package sql

import (
	"github.com/pgdelta/pgdelta/lib/output"
)

type TableRef struct {
	Schema string
	Table  string
}

func (t TableRef) Qualified(q output.Quoter) string {
	return q.QualifyTable(t.Schema, t.Table)
}

type ViewRef struct {
	Schema string
	View   string
}

func (v ViewRef) Qualified(q output.Quoter) string {
	return q.QualifyObject(v.Schema, v.View)
}

// FunctionRef identifies a function by its full signature; the argument
// type list is part of the name for every statement that targets it.
type FunctionRef struct {
	Schema    string
	Signature string
}

func (f FunctionRef) Qualified(q output.Quoter) string {
	return q.QualifyObject(f.Schema, f.Signature)
}

type IndexRef struct {
	Schema string
	Index  string
}

func (i IndexRef) Qualified(q output.Quoter) string {
	return q.QualifyObject(i.Schema, i.Index)
}
