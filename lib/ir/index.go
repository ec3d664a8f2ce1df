package ir

// Index is a secondary access path on a table.
type Index struct {
	Name         string
	Columns      []string
	Unique       bool
	Primary      bool
	AccessMethod string
	Definition   string
}

// Equals compares the full pg_get_indexdef text; that also catches
// uniqueness, column order and access method changes.
func (i *Index) Equals(other *Index) bool {
	return i.Definition == other.Definition
}
