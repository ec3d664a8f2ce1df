package pgsql8

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgdelta/pgdelta/lib/ir"
)

// statementsOnly filters out banners, section comments and blank
// separators, leaving the actual DDL.
func statementsOnly(rendered []string) []string {
	out := []string{}
	for _, line := range rendered {
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func TestDiffSnapshots_IdenticalSnapshotsEmitNoDDL(t *testing.T) {
	snap := func() *ir.Snapshot {
		return &ir.Snapshot{
			Schemas: []*ir.Schema{
				{
					Name: "public",
					Tables: []*ir.Table{
						{
							Name:  "users",
							Owner: "admin",
							Columns: []*ir.Column{
								{Position: 1, Name: "id", Type: "int4", NotNull: true, TypeMod: -1},
							},
							PrimaryKey: &ir.PrimaryKey{Name: "users_pkey", Columns: []string{"id"}, Definition: "PRIMARY KEY (id)"},
							Grants:     []*ir.Grant{{Role: "app", Privileges: "arwd"}},
						},
					},
					Views: []*ir.View{
						{Name: "v", Owner: "admin", Definition: " SELECT 1;"},
					},
				},
			},
		}
	}

	ddl := DiffSnapshots(snap(), snap())
	assert.Empty(t, statementsOnly(renderAll(t, ddl)))
}

func TestDiffSnapshots_SchemaOnlyInTarget(t *testing.T) {
	source := &ir.Snapshot{Schemas: []*ir.Schema{{Name: "public"}}}
	target := &ir.Snapshot{
		Schemas: []*ir.Schema{
			{Name: "public"},
			{
				Name: "reporting",
				Tables: []*ir.Table{
					{Name: "daily", Owner: "admin", Columns: []*ir.Column{{Name: "day", Type: "date", TypeMod: -1}}},
				},
			},
		},
	}

	ddl := statementsOnly(renderAll(t, DiffSnapshots(source, target)))
	assert.Equal(t, []string{
		"CREATE SCHEMA reporting;",
		"CREATE TABLE reporting.daily (\n  day date NULL\n);",
		"ALTER TABLE reporting.daily OWNER TO admin;",
	}, ddl)
}

func TestDiffSnapshots_SchemaOnlyInSource(t *testing.T) {
	source := &ir.Snapshot{
		Schemas: []*ir.Schema{
			{Name: "legacy"},
			{Name: "public"},
		},
	}
	target := &ir.Snapshot{Schemas: []*ir.Schema{{Name: "public"}}}

	ddl := statementsOnly(renderAll(t, DiffSnapshots(source, target)))
	assert.Equal(t, []string{
		"DROP SCHEMA legacy CASCADE;",
	}, ddl)
}

func TestDiffSnapshots_SectionHeadersPresent(t *testing.T) {
	snap := &ir.Snapshot{Schemas: []*ir.Schema{{Name: "public"}}}
	rendered := strings.Join(renderAll(t, DiffSnapshots(snap, snap)), "\n")
	assert.Contains(t, rendered, "SCHEMA: public")
	assert.Contains(t, rendered, "-- TABLES")
	assert.Contains(t, rendered, "-- VIEWS")
	assert.Contains(t, rendered, "-- FUNCTIONS")
}

func TestDiffSnapshots_SchemaOrderIndependent(t *testing.T) {
	a := &ir.Snapshot{Schemas: []*ir.Schema{{Name: "b"}, {Name: "a"}}}
	b := &ir.Snapshot{Schemas: []*ir.Schema{{Name: "a"}, {Name: "b"}}}
	ddl := statementsOnly(renderAll(t, DiffSnapshots(a, b)))
	assert.Empty(t, ddl)
}
