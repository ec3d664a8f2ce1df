package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// ConstraintAdd attaches a constraint using its canonical definition text
// from the catalogs (primary key, unique, check or foreign key alike).
type ConstraintAdd struct {
	Table      TableRef
	Constraint string
	Definition string
}

func (c *ConstraintAdd) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s %s;",
		c.Table.Qualified(q),
		q.QuoteObject(c.Constraint),
		c.Definition,
	)
}

type ConstraintDrop struct {
	Table      TableRef
	Constraint string
}

func (c *ConstraintDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"ALTER TABLE %s DROP CONSTRAINT %s;",
		c.Table.Qualified(q),
		q.QuoteObject(c.Constraint),
	)
}
