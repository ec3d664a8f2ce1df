package ir

// Definition fields throughout hold the canonical constraint text as
// produced by pg_get_constraintdef, used verbatim in generated DDL.

type PrimaryKey struct {
	Name       string
	Columns    []string
	Definition string
}

func (pk *PrimaryKey) Equals(other *PrimaryKey) bool {
	return pk.Name == other.Name &&
		ColumnNameList(pk.Columns) == ColumnNameList(other.Columns)
}

type UniqueKey struct {
	Name       string
	Columns    []string
	Definition string
}

func (uk *UniqueKey) Equals(other *UniqueKey) bool {
	return uk.Name == other.Name &&
		ColumnNameList(uk.Columns) == ColumnNameList(other.Columns)
}

type Check struct {
	Name       string
	Expression string
	Definition string
}

func (c *Check) Equals(other *Check) bool {
	return c.Name == other.Name && c.Expression == other.Expression
}

// ForeignKey is rendered only on full dumps, in a second pass after every
// table exists; the diff path does not reconcile foreign keys.
type ForeignKey struct {
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	MatchType  string
	OnDelete   string
	OnUpdate   string
	Definition string
}
