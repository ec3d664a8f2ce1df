package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// TableConstraint is an inline constraint line of a CREATE TABLE:
// the primary key, unique keys and checks. Foreign keys are never inlined;
// they are added after every table exists.
type TableConstraint struct {
	Constraint string
	Definition string
}

type TableCreate struct {
	Table       TableRef
	Columns     []ColumnDefinition
	Constraints []TableConstraint
}

func (t *TableCreate) ToSql(q output.Quoter) string {
	lines := make([]string, 0, len(t.Columns)+len(t.Constraints))
	for _, col := range t.Columns {
		lines = append(lines, col.Definition(q))
	}
	for _, con := range t.Constraints {
		lines = append(lines, fmt.Sprintf("CONSTRAINT %s %s", q.QuoteObject(con.Constraint), con.Definition))
	}

	body := ""
	for i, line := range lines {
		if i == 0 {
			body += fmt.Sprintf("  %s\n", line)
		} else {
			body += fmt.Sprintf(", %s\n", line)
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s);", t.Table.Qualified(q), body)
}

type TableDrop struct {
	Table TableRef
}

func (t *TableDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf("DROP TABLE %s;", t.Table.Qualified(q))
}

type TableAlterOwner struct {
	Table TableRef
	Role  string
}

func (t *TableAlterOwner) ToSql(q output.Quoter) string {
	return fmt.Sprintf("ALTER TABLE %s OWNER TO %s;", t.Table.Qualified(q), q.QuoteRole(t.Role))
}
