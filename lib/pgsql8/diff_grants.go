package pgsql8

import (
	"strings"

	"github.com/pgdelta/pgdelta/lib/diff"
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8/sql"
)

// diffGrants reconciles per-role privilege sets on one object. Unlike the
// other kinds the unit is the role, not the whole grant: a role on both
// sides gets privilege-level REVOKE and GRANT statements for the set
// differences rather than drop-and-recreate.
func diffGrants(obj sql.Qualifiable, function bool, source, target []*ir.Grant) []output.ToSql {
	byRole := func(a, b *ir.Grant) bool { return a.Role < b.Role }
	out := []output.ToSql{}

	sc := diff.NewCursor(sortedCopy(source, byRole))
	tc := diff.NewCursor(sortedCopy(target, byRole))

	for sc.Valid() || tc.Valid() {
		if !tc.Valid() || (sc.Valid() && sc.Current().Role < tc.Current().Role) {
			g := sc.Current()
			out = append(out, &sql.Revoke{Object: obj, Function: function, Privileges: g.PrivilegeNames(), Role: g.Role})
			sc.Advance()
			continue
		}

		if !sc.Valid() || tc.Current().Role < sc.Current().Role {
			g := tc.Current()
			out = append(out, &sql.Grant{Object: obj, Function: function, Privileges: g.PrivilegeNames(), Role: g.Role})
			tc.Advance()
			continue
		}

		out = append(out, diffGrant(obj, function, sc.Current(), tc.Current())...)
		sc.Advance()
		tc.Advance()
	}

	return out
}

func diffGrant(obj sql.Qualifiable, function bool, source, target *ir.Grant) []output.ToSql {
	revoked := privilegeDifference(source.Privileges, target.Privileges)
	granted := privilegeDifference(target.Privileges, source.Privileges)

	out := []output.ToSql{}
	if revoked != "" {
		out = append(out, &sql.Revoke{Object: obj, Function: function, Privileges: ir.MustPrivilegeNames(revoked), Role: source.Role})
	}
	if granted != "" {
		out = append(out, &sql.Grant{Object: obj, Function: function, Privileges: ir.MustPrivilegeNames(granted), Role: target.Role})
	}
	return out
}

// privilegeDifference returns the abbreviations in a that are not in b,
// preserving a's order so output is deterministic.
func privilegeDifference(a, b string) string {
	var out strings.Builder
	for _, code := range a {
		if !strings.ContainsRune(b, code) {
			out.WriteRune(code)
		}
	}
	return out.String()
}
