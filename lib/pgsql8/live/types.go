package live

import (
	"github.com/jackc/pgtype"
)

// Row entry structs mirror the catalog queries; the builder turns them into
// the snapshot model.

type SchemaEntry struct {
	Oid  pgtype.OID
	Name string
}

type TableEntry struct {
	Oid   pgtype.OID
	Owner string
	Name  string
	ACL   string
}

type ColumnEntry struct {
	Position     int16
	Name         string
	Type         string
	NotNull      bool
	Default      string
	SequenceName string
	NDims        int32
	TypeMod      int32
}

// KeyConstraintEntry is a primary key or unique constraint row; Columns
// holds attribute numbers to resolve against the table's columns.
type KeyConstraintEntry struct {
	Oid        pgtype.OID
	Name       string
	Columns    []int16
	Definition string
}

type CheckEntry struct {
	Oid        pgtype.OID
	Name       string
	Expression string
	Definition string
}

type ForeignKeyEntry struct {
	Oid         pgtype.OID
	Name        string
	Columns     []int16
	RefTableOid pgtype.OID
	RefColumns  []int16
	MatchType   string
	OnDelete    string
	OnUpdate    string
	Definition  string
}

type IndexEntry struct {
	Oid          pgtype.OID
	Name         string
	Columns      []int16
	Unique       bool
	Primary      bool
	AccessMethod string
	Definition   string
}

type TriggerEntry struct {
	Name          string
	ConstraintOid pgtype.OID
	Definition    string
}

type ViewEntry struct {
	Oid        pgtype.OID
	Owner      string
	Name       string
	ACL        string
	Definition string
}

type FunctionEntry struct {
	Oid         pgtype.OID
	Owner       string
	Name        string
	ArgTypes    []string
	ReturnType  string
	Language    string
	IsAggregate bool
	IsWindow    bool
	ACL         string
	Definition  string
}
