package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"itm/internal/shared/authorization"
)

type stubProject string

func (s stubProject) AdminUsername() string { return string(s) }

var (
	alice = authorization.Principal{Username: "alice"}
	root  = authorization.Principal{Username: "root", IsAdmin: true}
)

func TestCanManageGlobalEntities(t *testing.T) {
	assert.True(t, CanManageGlobalEntities(root).Allowed())

	d := CanManageGlobalEntities(alice)
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonNotAdmin, d.Reason())
}

func TestCanManageProject(t *testing.T) {
	tests := []struct {
		name      string
		principal authorization.Principal
		project   AdministeredProject
		allowed   bool
	}{
		{name: "admin of project", principal: alice, project: stubProject("alice"), allowed: true},
		{name: "other user", principal: alice, project: stubProject("bob"), allowed: false},
		{name: "global admin is not project admin", principal: root, project: stubProject("alice"), allowed: false},
		{name: "missing project", principal: alice, project: nil, allowed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanManageProject(tt.principal, tt.project)
			assert.Equal(t, tt.allowed, d.Allowed())
			if !tt.allowed {
				assert.Equal(t, ReasonNotProjectAdmin, d.Reason())
			} else {
				assert.Empty(t, d.Reason())
			}
		})
	}
}

func TestCanActOnProjectTicket(t *testing.T) {
	assert.True(t, CanActOnProjectTicket(alice, true).Allowed())

	d := CanActOnProjectTicket(root, false)
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonNotMember, d.Reason())
}

func TestCanRemoveMember(t *testing.T) {
	project := stubProject("alice")

	assert.True(t, CanRemoveMember(project, "bob").Allowed())

	d := CanRemoveMember(project, "alice")
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonSelfRemovalForbidden, d.Reason())
}

func TestIsSelf(t *testing.T) {
	assert.True(t, IsSelf(alice, "alice"))
	assert.False(t, IsSelf(alice, "bob"))
}
