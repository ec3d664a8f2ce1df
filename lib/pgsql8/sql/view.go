package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

type ViewCreate struct {
	View ViewRef
	// Query is the pg_get_viewdef text, which carries its own terminator.
	Query string
}

func (v *ViewCreate) ToSql(q output.Quoter) string {
	return fmt.Sprintf("CREATE VIEW %s AS\n%s", v.View.Qualified(q), v.Query)
}

type ViewDrop struct {
	View ViewRef
}

func (v *ViewDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf("DROP VIEW %s;", v.View.Qualified(q))
}

type ViewAlterOwner struct {
	View ViewRef
	Role string
}

func (v *ViewAlterOwner) ToSql(q output.Quoter) string {
	return fmt.Sprintf("ALTER VIEW %s OWNER TO %s;", v.View.Qualified(q), q.QuoteRole(v.Role))
}
