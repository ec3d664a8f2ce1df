package sql

import (
	"fmt"
	"strings"
)

// Quoter renders identifiers. Generated DDL mirrors the catalogs, which
// store identifiers already case-folded, so quoting is off unless asked for.
type Quoter struct {
	ShouldQuoteSchemaNames bool
	ShouldQuoteTableNames  bool
	ShouldQuoteColumnNames bool
	ShouldQuoteObjectNames bool
}

func (q *Quoter) getQuotedName(name string, shouldQuote bool) string {
	if !shouldQuote {
		return name
	}
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(name, `"`, `""`))
}

func (q *Quoter) QuoteSchema(name string) string {
	return q.getQuotedName(name, q.ShouldQuoteSchemaNames)
}

func (q *Quoter) QuoteTable(name string) string {
	return q.getQuotedName(name, q.ShouldQuoteTableNames)
}

func (q *Quoter) QuoteColumn(name string) string {
	return q.getQuotedName(name, q.ShouldQuoteColumnNames)
}

func (q *Quoter) QuoteRole(name string) string {
	// the PUBLIC role is a keyword, not an identifier
	if strings.EqualFold(name, "public") {
		return name
	}
	return q.getQuotedName(name, q.ShouldQuoteObjectNames)
}

func (q *Quoter) QuoteObject(name string) string {
	return q.getQuotedName(name, q.ShouldQuoteObjectNames)
}

func (q *Quoter) QualifyTable(schema, table string) string {
	return fmt.Sprintf("%s.%s", q.QuoteSchema(schema), q.QuoteTable(table))
}

func (q *Quoter) QualifyObject(schema, obj string) string {
	return fmt.Sprintf("%s.%s", q.QuoteSchema(schema), q.QuoteObject(obj))
}

func (q *Quoter) QualifyColumn(schema, table, column string) string {
	return fmt.Sprintf("%s.%s.%s", q.QuoteSchema(schema), q.QuoteTable(table), q.QuoteColumn(column))
}
