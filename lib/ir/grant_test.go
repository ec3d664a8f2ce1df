package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrantsFromACL_SkipsOwnerEntry(t *testing.T) {
	grants, err := GrantsFromACL("{owner=arwdDxt/owner,app=arw/owner}")
	assert.NoError(t, err)
	assert.Equal(t, []*Grant{
		{Role: "app", Privileges: "arw"},
	}, grants)
}

func TestGrantsFromACL_EmptyRoleIsPublic(t *testing.T) {
	grants, err := GrantsFromACL("{=r/owner}")
	assert.NoError(t, err)
	assert.Equal(t, []*Grant{
		{Role: "PUBLIC", Privileges: "r"},
	}, grants)
}

func TestGrantsFromACL_NotAclShaped(t *testing.T) {
	grants, err := GrantsFromACL("")
	assert.NoError(t, err)
	assert.Empty(t, grants)

	grants, err = GrantsFromACL("app=arw/owner")
	assert.NoError(t, err)
	assert.Empty(t, grants)
}

func TestGrantsFromACL_MalformedEntry(t *testing.T) {
	_, err := GrantsFromACL("{app-arw}")
	assert.Error(t, err)
}

func TestGrantsFromACL_UnknownAbbreviation(t *testing.T) {
	_, err := GrantsFromACL("{app=z/owner}")
	assert.Error(t, err)
}

func TestPrivilegeNames_PreservesOrder(t *testing.T) {
	names, err := PrivilegeNames("war")
	assert.NoError(t, err)
	assert.Equal(t, []string{"UPDATE", "INSERT", "SELECT"}, names)
}

func TestPrivilegeNames_AllAbbreviations(t *testing.T) {
	names, err := PrivilegeNames("rawdDxtX")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"SELECT", "INSERT", "UPDATE", "DELETE",
		"TRUNCATE", "REFERENCES", "TRIGGER", "EXECUTE",
	}, names)
}

func TestFKAction(t *testing.T) {
	action, err := FKAction("c")
	assert.NoError(t, err)
	assert.Equal(t, "CASCADE", action)

	_, err = FKAction("?")
	assert.Error(t, err)
}

func TestFKMatchType(t *testing.T) {
	match, err := FKMatchType("f")
	assert.NoError(t, err)
	assert.Equal(t, "FULL", match)

	_, err = FKMatchType("x")
	assert.Error(t, err)
}
