package ticket

import "errors"

// ErrAlreadyAssigned is returned by AssignSelf and by the repository's
// conditional claim when another user got there first.
var ErrAlreadyAssigned = errors.New("ticket is already assigned")
