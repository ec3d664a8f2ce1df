// Package pgsql8 turns snapshot comparisons into ordered Postgres DDL.
//
// The diff walks schemas, then tables, views and functions within each
// schema, handing every object kind to the generic merge in lib/diff with
// that kind's key, equality and statement bindings. Dump mode renders one
// snapshot in full. Input sequences come from the catalogs already ordered
// by name; the kinds the catalogs cannot pre-order (columns by name, grants
// by role, functions by signature) are re-sorted here before merging.
package pgsql8

import (
	"golang.org/x/exp/slices"

	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

func NewQuoter() output.Quoter {
	return &sql.Quoter{}
}

// sortedCopy leaves the snapshot untouched; loaded snapshots are read-only.
func sortedCopy[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	slices.SortFunc(out, less)
	return out
}

func columnDefinition(col *ir.Column) sql.ColumnDefinition {
	if col.IsSerial() {
		// the owned sequence supplies the real default; restating it would
		// fight the serial pseudo-type, so it survives only as a comment
		return sql.ColumnDefinition{
			Column:           col.Name,
			Type:             col.SerialType(),
			NotNull:          col.NotNull,
			Default:          col.Default,
			DefaultIsComment: true,
		}
	}
	return sql.ColumnDefinition{
		Column:  col.Name,
		Type:    col.TypeString(),
		NotNull: col.NotNull,
		Default: col.Default,
	}
}
