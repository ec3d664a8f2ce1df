package ir

// Table is a relation in a schema. Loaded tables are read-only; nothing in
// the diff path mutates them.
type Table struct {
	Name        string
	Owner       string
	Grants      []*Grant
	Columns     []*Column
	PrimaryKey  *PrimaryKey
	UniqueKeys  []*UniqueKey
	ForeignKeys []*ForeignKey
	Checks      []*Check
	Indexes     []*Index
	Triggers    []*Trigger
}

// NonConstraintIndexes returns the indexes that are not the backing index
// of a primary key or unique constraint; those travel with the constraint.
func (t *Table) NonConstraintIndexes() []*Index {
	out := []*Index{}
	for _, index := range t.Indexes {
		if index.Primary {
			continue
		}
		if index.Unique && t.hasUniqueKeyNamed(index.Name) {
			continue
		}
		out = append(out, index)
	}
	return out
}

func (t *Table) hasUniqueKeyNamed(name string) bool {
	for _, uk := range t.UniqueKeys {
		if uk.Name == name {
			return true
		}
	}
	return false
}

func (t *Table) NonConstraintTriggers() []*Trigger {
	out := []*Trigger{}
	for _, trigger := range t.Triggers {
		if !trigger.Constraint {
			out = append(out, trigger)
		}
	}
	return out
}
