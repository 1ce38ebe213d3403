package middleware

import (
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const principalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal set by
// AuthMiddleware. The boolean is false when the request is unauthenticated.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val := c.Request.Context().Value(principalCtxKey)
	if val == nil {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}
