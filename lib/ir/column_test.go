package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumn_TypeString_NoModifier(t *testing.T) {
	col := &Column{Name: "id", Type: "int4", TypeMod: -1}
	assert.Equal(t, "int4", col.TypeString())
}

func TestColumn_TypeString_Varchar(t *testing.T) {
	// varchar(20) is stored as 20+4
	col := &Column{Name: "name", Type: "varchar", TypeMod: 24}
	assert.Equal(t, "varchar(20)", col.TypeString())
}

func TestColumn_TypeString_Bpchar(t *testing.T) {
	col := &Column{Name: "code", Type: "bpchar", TypeMod: 7}
	assert.Equal(t, "bpchar(3)", col.TypeString())
}

func TestColumn_TypeString_Numeric(t *testing.T) {
	// numeric(20, 1): precision in the high word, scale shifted in the low
	col := &Column{Name: "amount", Type: "numeric", TypeMod: 20<<16 | 1<<1}
	assert.Equal(t, "numeric(20, 1)", col.TypeString())
}

func TestColumn_TypeString_Interval(t *testing.T) {
	col := &Column{Name: "span", Type: "interval", TypeMod: 0x7fff0006}
	assert.Equal(t, "interval(6)", col.TypeString())
}

func TestColumn_TypeString_Array(t *testing.T) {
	col := &Column{Name: "tags", Type: "text", TypeMod: -1, NDims: 1}
	assert.Equal(t, "text[]", col.TypeString())
}

func TestColumn_Equals_IgnoresPosition(t *testing.T) {
	a := &Column{Position: 1, Name: "id", Type: "int4", TypeMod: -1}
	b := &Column{Position: 3, Name: "id", Type: "int4", TypeMod: -1}
	assert.True(t, a.Equals(b))
}

func TestColumn_Equals_SeesChanges(t *testing.T) {
	base := &Column{Name: "email", Type: "text", TypeMod: -1}
	assert.False(t, base.Equals(&Column{Name: "email", Type: "varchar", TypeMod: -1}))
	assert.False(t, base.Equals(&Column{Name: "email", Type: "text", TypeMod: -1, NotNull: true}))
	assert.False(t, base.Equals(&Column{Name: "email", Type: "text", TypeMod: -1, Default: "''::text"}))
	assert.False(t, base.Equals(&Column{Name: "email", Type: "text", TypeMod: -1, NDims: 1}))
}

func TestColumn_IsSerial(t *testing.T) {
	assert.True(t, (&Column{Type: "int4", SequenceName: "public.t_id_seq"}).IsSerial())
	assert.False(t, (&Column{Type: "int4"}).IsSerial())
	assert.False(t, (&Column{Type: "text", SequenceName: "public.t_id_seq"}).IsSerial())
}

func TestColumn_SerialType(t *testing.T) {
	assert.Equal(t, "smallserial", (&Column{Type: "int2"}).SerialType())
	assert.Equal(t, "serial", (&Column{Type: "int4"}).SerialType())
	assert.Equal(t, "bigserial", (&Column{Type: "int8"}).SerialType())
}
