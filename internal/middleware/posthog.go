package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/wallet_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		caller, exists := GetCallerFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/transactions/export" -> "api_v1_transactions_export"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"role":        string(caller.Role),
		}
		// filter names only, never their values
		if len(c.Request.URL.Query()) > 0 {
			keys := make([]string, 0, len(c.Request.URL.Query()))
			for k := range c.Request.URL.Query() {
				keys = append(keys, k)
			}
			props["query_keys"] = keys
		}

		posthogClient.Enqueue(caller.ID, eventName, props)
	}
}
