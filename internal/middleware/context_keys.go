package middleware

import (
	"context"

	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// WithCaller stores the authenticated caller's id and role in ctx.
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	ctx = context.WithValue(ctx, userIDKey, caller.ID)
	return context.WithValue(ctx, roleKey, caller.Role)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetCallerFromContext returns the caller identity set by AuthMiddleware.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Caller{}, false
	}
	role, _ := c.Request.Context().Value(roleKey).(domain.CallerRole)
	return domain.Caller{ID: userID, Role: role}, true
}
