package ir

// Schema is a database namespace. Child lists are in ascending name order
// as loaded from the catalogs.
type Schema struct {
	Name      string
	Tables    []*Table
	Views     []*View
	Functions []*Function
}

func (s *Schema) TryGetTableNamed(name string) *Table {
	if s == nil {
		return nil
	}
	for _, table := range s.Tables {
		if table.Name == name {
			return table
		}
	}
	return nil
}
