package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// IndexCreate replays the canonical pg_get_indexdef text.
type IndexCreate struct {
	Definition string
}

func (i *IndexCreate) ToSql(q output.Quoter) string {
	return fmt.Sprintf("%s;", i.Definition)
}

type IndexDrop struct {
	Index IndexRef
}

func (i *IndexDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf("DROP INDEX %s;", i.Index.Qualified(q))
}
