package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

type SchemaCreate struct {
	Schema string
}

func (s *SchemaCreate) ToSql(q output.Quoter) string {
	return fmt.Sprintf("CREATE SCHEMA %s;", q.QuoteSchema(s.Schema))
}

type SchemaDrop struct {
	Schema  string
	Cascade bool
}

func (s *SchemaDrop) ToSql(q output.Quoter) string {
	sql := fmt.Sprintf("DROP SCHEMA %s", q.QuoteSchema(s.Schema))
	if s.Cascade {
		sql += " CASCADE"
	}
	return sql + ";"
}
