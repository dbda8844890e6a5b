package common

import (
	"context"

	"itm/internal/domain/access"
	"itm/internal/domain/project"
	"itm/internal/shared/authorization"
	"itm/internal/shared/errors"
)

// RequireMembership allows the call only when the principal is a member of
// the named project.
func RequireMembership(ctx context.Context, members project.MembershipRepository, p authorization.Principal, projectName string) error {
	isMember, err := members.IsMember(ctx, projectName, p.Username)
	if err != nil {
		return errors.NewInternalError("failed to check project membership")
	}
	return DecisionError(access.CanActOnProjectTicket(p, isMember), "you are not a member of this project")
}
