package ir

// View is a derived relation. Definition is the pg_get_viewdef text and is
// the identity used by the diff: any textual difference drops and recreates
// the view.
type View struct {
	Name       string
	Owner      string
	Grants     []*Grant
	Definition string
	Triggers   []*Trigger
}

func (v *View) NonConstraintTriggers() []*Trigger {
	out := []*Trigger{}
	for _, trigger := range v.Triggers {
		if !trigger.Constraint {
			out = append(out, trigger)
		}
	}
	return out
}
