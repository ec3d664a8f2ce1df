package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_NonConstraintIndexes(t *testing.T) {
	table := &Table{
		Name: "users",
		UniqueKeys: []*UniqueKey{
			{Name: "users_email_key", Columns: []string{"email"}},
		},
		Indexes: []*Index{
			{Name: "users_pkey", Unique: true, Primary: true},
			{Name: "users_email_key", Unique: true},
			{Name: "users_name_idx"},
			{Name: "users_handle_idx", Unique: true},
		},
	}

	indexes := table.NonConstraintIndexes()
	names := make([]string, len(indexes))
	for i, index := range indexes {
		names[i] = index.Name
	}
	// the primary key's index and the unique constraint's backing index
	// travel with their constraints; a free-standing unique index does not
	assert.Equal(t, []string{"users_name_idx", "users_handle_idx"}, names)
}

func TestTable_NonConstraintTriggers(t *testing.T) {
	table := &Table{
		Name: "orders",
		Triggers: []*Trigger{
			{Name: "orders_audit", Definition: "CREATE TRIGGER orders_audit ..."},
			{Name: "RI_ConstraintTrigger_12345", Constraint: true},
		},
	}

	triggers := table.NonConstraintTriggers()
	assert.Len(t, triggers, 1)
	assert.Equal(t, "orders_audit", triggers[0].Name)
}

func TestIndex_Equals_ComparesDefinition(t *testing.T) {
	a := &Index{Name: "t_a_idx", Definition: "CREATE INDEX t_a_idx ON public.t USING btree (a)"}
	b := &Index{Name: "t_a_idx", Definition: "CREATE INDEX t_a_idx ON public.t USING hash (a)"}
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(&Index{Name: "t_a_idx", Definition: a.Definition}))
}

func TestPrimaryKey_Equals(t *testing.T) {
	a := &PrimaryKey{Name: "t_pkey", Columns: []string{"id"}}
	assert.True(t, a.Equals(&PrimaryKey{Name: "t_pkey", Columns: []string{"id"}}))
	assert.False(t, a.Equals(&PrimaryKey{Name: "t_pkey", Columns: []string{"id", "rev"}}))
	assert.False(t, a.Equals(&PrimaryKey{Name: "t_pk", Columns: []string{"id"}}))
}

func TestFunction_Signature(t *testing.T) {
	f := &Function{Name: "add", ArgTypes: []string{"integer", "integer"}}
	assert.Equal(t, "add(integer, integer)", f.Signature())

	noArgs := &Function{Name: "now_utc"}
	assert.Equal(t, "now_utc()", noArgs.Signature())
}
