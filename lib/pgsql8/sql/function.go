package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// FunctionCreate replays the canonical pg_get_functiondef text.
type FunctionCreate struct {
	Definition string
}

func (f *FunctionCreate) ToSql(q output.Quoter) string {
	return fmt.Sprintf("%s;", f.Definition)
}

type FunctionDrop struct {
	Function FunctionRef
}

func (f *FunctionDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf("DROP FUNCTION %s;", f.Function.Qualified(q))
}

type FunctionAlterOwner struct {
	Function FunctionRef
	Role     string
}

func (f *FunctionAlterOwner) ToSql(q output.Quoter) string {
	return fmt.Sprintf("ALTER FUNCTION %s OWNER TO %s;", f.Function.Qualified(q), q.QuoteRole(f.Role))
}
