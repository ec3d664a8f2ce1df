package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// SchemaBanner demarcates one schema's statements in the output stream.
type SchemaBanner struct {
	Schema string
}

func (b *SchemaBanner) ToSql(q output.Quoter) string {
	rule := output.CommentLinePrefix + " *************************************"
	return fmt.Sprintf("%s\n%s * SCHEMA: %s\n%s", rule, output.CommentLinePrefix, b.Schema, rule)
}

// SectionComment labels an object-kind section (TABLES, VIEWS, FUNCTIONS).
type SectionComment struct {
	Section string
}

func (s *SectionComment) ToSql(q output.Quoter) string {
	return fmt.Sprintf("%s\n%s %s\n%s", output.CommentLinePrefix, output.CommentLinePrefix, s.Section, output.CommentLinePrefix)
}

// Blank is an empty separator line between sections.
type Blank struct{}

func (Blank) ToSql(q output.Quoter) string {
	return ""
}
