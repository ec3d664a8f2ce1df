package output

import (
	"fmt"
)

const CommentLinePrefix = "--"

type ToSql interface {
	ToSql(Quoter) string
}

type Quoter interface {
	QuoteSchema(schema string) string
	QuoteTable(table string) string
	QuoteColumn(column string) string
	QuoteRole(role string) string
	QuoteObject(obj string) string
	QualifyTable(schema, table string) string
	QualifyObject(schema, obj string) string
	QualifyColumn(schema, table, column string) string
}

func NewRawSQL(format string, args ...interface{}) rawSQL {
	return rawSQL(fmt.Sprintf(format, args...))
}

type rawSQL string

func (c rawSQL) ToSql(q Quoter) string {
	return string(c)
}
