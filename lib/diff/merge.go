package diff

import (
	"github.com/pgdelta/pgdelta/lib/output"
)

// Kind binds the merge algorithm to one object kind. Instantiating it per
// kind means a comparison can never receive an object of another kind.
type Kind[T any] struct {
	// Key yields the ordering key the input sequences are sorted by.
	Key func(T) string
	// Equal reports whether the two sides need no migration statements.
	Equal func(source, target T) bool
	// Drop emits statements removing the object from the source side.
	Drop func(T) []output.ToSql
	// Add emits statements creating the object on the target side.
	Add func(T) []output.ToSql
	// Alter, when set, replaces the drop-then-add pair for a same-key object
	// whose sides are not Equal. Only columns define a true alter path.
	Alter func(source, target T) []output.ToSql
}

// Merge produces the ordered edit script transforming source into target.
// Both sequences must already be sorted ascending by Key.
func (k Kind[T]) Merge(source, target []T) []output.ToSql {
	out := []output.ToSql{}
	sc := NewCursor(source)
	tc := NewCursor(target)

	for sc.Valid() || tc.Valid() {
		if !tc.Valid() {
			out = append(out, k.Drop(sc.Current())...)
			sc.Advance()
			continue
		}

		if !sc.Valid() {
			out = append(out, k.Add(tc.Current())...)
			tc.Advance()
			continue
		}

		sourceKey := k.Key(sc.Current())
		targetKey := k.Key(tc.Current())

		if sourceKey < targetKey {
			out = append(out, k.Drop(sc.Current())...)
			sc.Advance()
			continue
		}

		if sourceKey > targetKey {
			out = append(out, k.Add(tc.Current())...)
			tc.Advance()
			continue
		}

		if !k.Equal(sc.Current(), tc.Current()) {
			if k.Alter != nil {
				out = append(out, k.Alter(sc.Current(), tc.Current())...)
			} else {
				out = append(out, k.Drop(sc.Current())...)
				out = append(out, k.Add(tc.Current())...)
			}
		}
		sc.Advance()
		tc.Advance()
	}

	return out
}
