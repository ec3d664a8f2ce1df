package ir

import "fmt"

// Column is a table attribute. Position is preserved for CREATE TABLE
// rendering but deliberately ignored by Equals: identical column sets in a
// different physical order are not a schema change, because the generated
// DDL never attempts physical reordering.
type Column struct {
	Position     int
	Name         string
	Type         string
	NotNull      bool
	Default      string
	SequenceName string
	NDims        int
	TypeMod      int
}

// Equals compares the fields that matter for regeneration. Type length and
// precision (TypeMod) are not compared.
// TODO(feat) compare typmod once ALTER TYPE length changes are supported
func (c *Column) Equals(other *Column) bool {
	return c.Name == other.Name &&
		c.Type == other.Type &&
		c.NotNull == other.NotNull &&
		c.Default == other.Default &&
		c.NDims == other.NDims
}

// IsSerial reports whether the column is an integer backed by an owned
// sequence, renderable as a serial-family pseudo-type.
func (c *Column) IsSerial() bool {
	if c.SequenceName == "" {
		return false
	}
	switch c.Type {
	case "int2", "int4", "int8":
		return true
	}
	return false
}

func (c *Column) SerialType() string {
	switch c.Type {
	case "int2":
		return "smallserial"
	case "int4":
		return "serial"
	case "int8":
		return "bigserial"
	}
	panic(fmt.Sprintf("column %s: type %s has no serial form", c.Name, c.Type))
}

// TypeString renders the column type with its length suffix decoded from
// the stored type modifier, and an array suffix when dimensioned.
func (c *Column) TypeString() string {
	length := ""
	if c.TypeMod != -1 {
		// Encodings reverse engineered from the catalogs; possibly fragile
		// and incomplete
		switch c.Type {
		case "bpchar", "varchar":
			length = fmt.Sprintf("(%d)", c.TypeMod-4)
		case "numeric":
			length = fmt.Sprintf("(%d, %d)", c.TypeMod>>16, (c.TypeMod&0xffff)>>1)
		case "interval":
			length = fmt.Sprintf("(%d)", c.TypeMod&0xffff)
		default:
			length = fmt.Sprintf("(%d)", c.TypeMod)
		}
	}
	dims := ""
	if c.NDims > 0 {
		dims = "[]"
	}
	return c.Type + length + dims
}
