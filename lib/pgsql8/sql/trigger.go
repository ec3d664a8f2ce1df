package sql

import (
	"fmt"

	"github.com/pgdelta/pgdelta/lib/output"
)

// TriggerCreate replays the canonical pg_get_triggerdef text.
type TriggerCreate struct {
	Definition string
}

func (t *TriggerCreate) ToSql(q output.Quoter) string {
	return fmt.Sprintf("%s;", t.Definition)
}

// TriggerDrop works for triggers on tables and views alike; the statement
// names the owning relation either way.
type TriggerDrop struct {
	Relation TableRef
	Trigger  string
}

func (t *TriggerDrop) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"DROP TRIGGER %s ON %s;",
		q.QuoteObject(t.Trigger),
		t.Relation.Qualified(q),
	)
}
