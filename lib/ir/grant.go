package ir

import (
	"strings"

	"github.com/pkg/errors"
)

// Grant is one role's privilege set on a schema object. Privileges holds the
// catalog abbreviation characters (e.g. "arwd"), validated at construction.
type Grant struct {
	Role       string
	Privileges string
}

func (g *Grant) PrivilegeNames() []string {
	return MustPrivilegeNames(g.Privileges)
}

// GrantsFromACL parses a catalog ACL string of the form
// {role=privs/grantor,...} into grants. Grants a role gave itself (the
// object owner's implicit ACL entry) are dropped: they are recreated by
// ownership, not by GRANT statements. An empty role is the PUBLIC
// pseudo-role. Strings that are not ACL-shaped yield no grants.
func GrantsFromACL(acl string) ([]*Grant, error) {
	if len(acl) <= 2 {
		return nil, nil
	}
	if acl[0] != '{' || acl[len(acl)-1] != '}' {
		return nil, nil
	}
	grants := []*Grant{}
	for _, entry := range strings.Split(acl[1:len(acl)-1], ",") {
		rolePrivs, grantor, found := strings.Cut(entry, "/")
		if !found {
			return nil, errors.Errorf("malformed ACL entry %q", entry)
		}
		role, privs, found := strings.Cut(rolePrivs, "=")
		if !found {
			return nil, errors.Errorf("malformed ACL entry %q", entry)
		}
		if role == grantor {
			continue
		}
		if _, err := PrivilegeNames(privs); err != nil {
			return nil, errors.Wrapf(err, "in ACL entry %q", entry)
		}
		if role == "" {
			role = "PUBLIC"
		}
		grants = append(grants, &Grant{Role: role, Privileges: privs})
	}
	return grants, nil
}
