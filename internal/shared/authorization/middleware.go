package authorization

import (
	"github.com/gin-gonic/gin"

	"itm/internal/shared/constants"
)

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(constants.ContextKeyUsername, p.Username)
	c.Set(constants.ContextKeyIsAdmin, p.IsAdmin)
	c.Set(constants.ContextKeyUserRole, p.Role().String())
}

// GetPrincipal returns the caller stored by SetPrincipal. ok is false on
// routes that did not pass the auth middleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	username := c.GetString(constants.ContextKeyUsername)
	if username == "" {
		return Principal{}, false
	}
	return Principal{
		Username: username,
		IsAdmin:  c.GetBool(constants.ContextKeyIsAdmin),
	}, true
}
