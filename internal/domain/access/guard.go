// Package access holds the pure authorization policy consulted before every
// mutating operation. The functions never fail and never touch storage; a
// deny is a value, not an error.
package access

import (
	"itm/internal/shared/authorization"
)

// Reason explains a Deny decision.
type Reason string

const (
	ReasonNotAdmin             Reason = "not-admin"
	ReasonNotProjectAdmin      Reason = "not-project-admin"
	ReasonNotMember            Reason = "not-member"
	ReasonSelfRemovalForbidden Reason = "self-removal-forbidden"
)

func (r Reason) String() string {
	return string(r)
}

// Decision is the outcome of a policy check.
type Decision struct {
	allowed bool
	reason  Reason
}

func Allow() Decision {
	return Decision{allowed: true}
}

func Deny(reason Reason) Decision {
	return Decision{reason: reason}
}

func (d Decision) Allowed() bool {
	return d.allowed
}

// Reason is empty for an Allow decision.
func (d Decision) Reason() Reason {
	return d.reason
}

// AdministeredProject is anything that names its single admin.
type AdministeredProject interface {
	AdminUsername() string
}

// CanManageGlobalEntities gates client management and user deletion.
func CanManageGlobalEntities(p authorization.Principal) Decision {
	if p.IsAdmin {
		return Allow()
	}
	return Deny(ReasonNotAdmin)
}

// CanManageProject allows only the project's own admin. The global admin
// flag grants nothing here.
func CanManageProject(p authorization.Principal, project AdministeredProject) Decision {
	if project != nil && project.AdminUsername() == p.Username {
		return Allow()
	}
	return Deny(ReasonNotProjectAdmin)
}

// CanActOnProjectTicket gates ticket work and project reads on membership.
func CanActOnProjectTicket(_ authorization.Principal, isMember bool) Decision {
	if isMember {
		return Allow()
	}
	return Deny(ReasonNotMember)
}

// IsSelf reports whether username names the principal.
func IsSelf(p authorization.Principal, username string) bool {
	return p.Username == username
}

// CanRemoveMember forbids removing the project admin from its own project.
func CanRemoveMember(project AdministeredProject, username string) Decision {
	if project != nil && project.AdminUsername() == username {
		return Deny(ReasonSelfRemovalForbidden)
	}
	return Allow()
}
