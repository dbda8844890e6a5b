package common

import (
	"itm/internal/domain/access"
	"itm/internal/shared/errors"
)

// DecisionError converts a deny decision into the matching AppError and
// returns nil for an allow.
func DecisionError(d access.Decision, message string) error {
	if d.Allowed() {
		return nil
	}
	if d.Reason() == access.ReasonSelfRemovalForbidden {
		return errors.NewSelfRemovalForbiddenError(message, d.Reason().String())
	}
	return errors.NewNotAuthorizedError(message, d.Reason().String())
}
