package ir

// Trigger is a row or statement hook on a table or view. Constraint
// triggers belong to their constraint and are never diffed or rendered
// independently.
type Trigger struct {
	Name       string
	Constraint bool
	Definition string
}

func (t *Trigger) Equals(other *Trigger) bool {
	return t.Name == other.Name &&
		t.Constraint == other.Constraint &&
		t.Definition == other.Definition
}
