package permission

import (
	"fmt"

	"itm/internal/shared/authorization"
	"itm/internal/shared/logger"
)

// Resources and actions named by the route policies.
const (
	ResourceUser    = "user"
	ResourceClient  = "client"
	ResourceProject = "project"
	ResourceTicket  = "ticket"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionAny    = "*"
)

// DefaultPolicies grants every authenticated user the project and ticket
// surface. Client writes and user deletion are reserved to global admins.
func DefaultPolicies() [][]string {
	user := authorization.RoleUser.String()
	admin := authorization.RoleAdmin.String()
	return [][]string{
		{user, ResourceUser, ActionUpdate},
		{user, ResourceClient, ActionRead},
		{user, ResourceProject, ActionAny},
		{user, ResourceTicket, ActionAny},

		{admin, ResourceUser, ActionDelete},
		{admin, ResourceClient, ActionCreate},
		{admin, ResourceClient, ActionUpdate},
		{admin, ResourceClient, ActionDelete},
	}
}

// InitPolicies installs DefaultPolicies and the admin to user inheritance.
// Policies already present are skipped.
func InitPolicies(e *Enforcer, log logger.Interface) error {
	for _, p := range DefaultPolicies() {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	if err := e.AddRoleInheritance(authorization.RoleAdmin.String(), authorization.RoleUser.String()); err != nil {
		return err
	}

	log.Infow("permission policies initialized", "count", len(DefaultPolicies()))
	return nil
}
