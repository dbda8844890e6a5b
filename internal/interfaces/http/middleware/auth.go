package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"itm/internal/infrastructure/auth"
	"itm/internal/shared/authorization"
	"itm/internal/shared/constants"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
	"itm/internal/shared/utils"
)

// TokenVerifier decodes a bearer token into its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth establishes the Principal from the Authorization header or
// answers 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			var authErr *errors.AuthError
			if stderrors.Is(err, auth.ErrTokenExpired) {
				authErr = errors.NewTokenExpiredError("access token")
			} else {
				authErr = errors.NewTokenInvalidError("access token")
			}
			if errors.ShouldLogAuthError(authErr) {
				m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			}
			utils.ErrorResponseWithError(c, authErr)
			c.Abort()
			return
		}

		authorization.SetPrincipal(c, claims.Principal())
		c.Next()
	}
}
