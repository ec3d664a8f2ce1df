package sql

import (
	"fmt"
	"strings"

	"github.com/pgdelta/pgdelta/lib/output"
)

// Qualifiable is any object reference a grant can target.
type Qualifiable interface {
	Qualified(output.Quoter) string
}

type Grant struct {
	Object Qualifiable
	// Function grants need the FUNCTION keyword before the object name.
	Function   bool
	Privileges []string
	Role       string
}

func (g *Grant) ToSql(q output.Quoter) string {
	return grantRevoke(q, "GRANT", g.Object, g.Function, g.Privileges, g.Role)
}

type Revoke struct {
	Object     Qualifiable
	Function   bool
	Privileges []string
	Role       string
}

func (r *Revoke) ToSql(q output.Quoter) string {
	return grantRevoke(q, "REVOKE", r.Object, r.Function, r.Privileges, r.Role)
}

func grantRevoke(q output.Quoter, which string, obj Qualifiable, function bool, privileges []string, role string) string {
	kind := ""
	if function {
		kind = "FUNCTION "
	}
	direction := "TO"
	if which == "REVOKE" {
		direction = "FROM"
	}
	return fmt.Sprintf(
		"%s %s ON %s%s %s %s;",
		which,
		strings.Join(privileges, ", "),
		kind,
		obj.Qualified(q),
		direction,
		q.QuoteRole(role),
	)
}
