// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"itm/internal/shared/authorization"
	"itm/internal/shared/constants"
	"itm/internal/shared/errors"
	"itm/internal/shared/utils"
)

// MustPrincipal returns the authenticated caller. When the auth middleware
// did not run it answers 401 and returns ok=false.
func MustPrincipal(c *gin.Context) (authorization.Principal, bool) {
	p, ok := authorization.GetPrincipal(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
		return authorization.Principal{}, false
	}
	return p, true
}
