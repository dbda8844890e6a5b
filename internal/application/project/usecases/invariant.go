package usecases

import (
	"context"
	"fmt"

	"itm/internal/domain/project"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

// ensureAdminIsMember re-checks, inside the running transaction, that the
// project admin is still a member. A violation aborts the transaction.
func ensureAdminIsMember(ctx context.Context, members project.MembershipRepository, p *project.Project, log logger.Interface) error {
	ok, err := members.IsMember(ctx, p.Name(), p.AdminUsername())
	if err != nil {
		return fmt.Errorf("failed to verify admin membership: %w", err)
	}
	if !ok {
		log.Errorw("project admin lost membership", "project", p.Name(), "admin", p.AdminUsername())
		return errors.NewInternalError("project admin must remain a member", p.Name())
	}
	return nil
}
