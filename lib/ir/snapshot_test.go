package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Validate_Clean(t *testing.T) {
	snap := &Snapshot{
		Schemas: []*Schema{
			{
				Name: "public",
				Tables: []*Table{
					{Name: "users", Columns: []*Column{{Name: "id"}, {Name: "email"}}},
				},
				Views:     []*View{{Name: "active_users"}},
				Functions: []*Function{{Name: "f", ArgTypes: []string{"integer"}}, {Name: "f", ArgTypes: []string{"text"}}},
			},
		},
	}
	assert.NoError(t, snap.Validate())
}

func TestSnapshot_Validate_Duplicates(t *testing.T) {
	snap := &Snapshot{
		Schemas: []*Schema{
			{Name: "public"},
			{
				Name: "public",
				Tables: []*Table{
					{Name: "users", Columns: []*Column{{Name: "id"}, {Name: "id"}}},
					{Name: "users"},
				},
				Functions: []*Function{
					{Name: "f", ArgTypes: []string{"integer"}},
					{Name: "f", ArgTypes: []string{"integer"}},
				},
			},
		},
	}

	err := snap.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate schema public")
	assert.Contains(t, err.Error(), "duplicate table public.users")
	assert.Contains(t, err.Error(), "duplicate column id on table public.users")
	assert.Contains(t, err.Error(), "duplicate function public.f(integer)")
}
