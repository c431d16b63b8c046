package httpx

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/user"
)

// Context keys set by the middleware in this package.
const (
	KeyRequestID = "rid"
	KeyUserID    = "userID"
	KeyRole      = "role"
)

type Authorizer interface {
	Authorize(ctx context.Context, token string, allowed ...user.Role) (*user.Claims, error)
}

// RequireRole rejects requests without a valid bearer token, or whose token
// role is not in allowed. No roles means any signed-in staff member.
func RequireRole(auth Authorizer, allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		tok, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || strings.TrimSpace(tok) == "" {
			Abort(c, fmt.Errorf("%w: missing bearer token", apperr.ErrUnauthorized))
			return
		}
		claims, err := auth.Authorize(c.Request.Context(), strings.TrimSpace(tok), allowed...)
		if err != nil {
			Abort(c, err)
			return
		}
		if id, err := claims.UserID(); err == nil {
			c.Set(KeyUserID, id)
		}
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// UserID returns the id stored by RequireRole, nil when the route is open.
func UserID(c *gin.Context) *int {
	v, ok := c.Get(KeyUserID)
	if !ok {
		return nil
	}
	id, ok := v.(int)
	if !ok {
		return nil
	}
	return &id
}
