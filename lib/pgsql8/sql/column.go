package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// ColumnDefinition is the rendered form of one column, shared by CREATE
// TABLE lines and the ALTER TABLE add/alter statements.
type ColumnDefinition struct {
	Column  string
	Type    string
	NotNull bool
	// Default is the default expression source text. When DefaultIsComment
	// is set (serial columns, whose defaults come from the owned sequence)
	// it is emitted as a trailing comment instead of a DEFAULT clause.
	Default          string
	DefaultIsComment bool
}

func (c ColumnDefinition) Definition(q output.Quoter) string {
	null := "NULL"
	if c.NotNull {
		null = "NOT NULL"
	}
	def := ""
	if c.Default != "" {
		if c.DefaultIsComment {
			def = fmt.Sprintf(" %s DEFAULT %s", output.CommentLinePrefix, c.Default)
		} else {
			def = fmt.Sprintf(" DEFAULT %s", c.Default)
		}
	}
	return fmt.Sprintf("%s %s %s%s", q.QuoteColumn(c.Column), c.Type, null, def)
}

type ColumnAdd struct {
	Table      TableRef
	Definition ColumnDefinition
}

func (c *ColumnAdd) ToSql(q output.Quoter) string {
	return fmt.Sprintf("ALTER TABLE %s ADD %s;", c.Table.Qualified(q), c.Definition.Definition(q))
}

// ColumnAlter carries the full new column definition; the statement
// restates the column rather than expressing the individual deltas.
type ColumnAlter struct {
	Table      TableRef
	Definition ColumnDefinition
}

func (c *ColumnAlter) ToSql(q output.Quoter) string {
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s;", c.Table.Qualified(q), c.Definition.Definition(q))
}

type ColumnDrop struct {
	Table  TableRef
	Column string
}

func (c *ColumnDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;", c.Table.Qualified(q), q.QuoteColumn(c.Column))
}
