package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"executive-assistant/pkg/log"
	"executive-assistant/pkg/response"
)

// Guard rejects webhook calls with a wrong secret token, from a source
// outside the allow-list, or above the per-source rate.
func Guard(v *SecurityValidator, tokenHeader string, l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := v.ValidateSecretToken(c.GetHeader(tokenHeader)); err != nil {
			l.Warnf(ctx, "webhook.Guard: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if err := v.ValidateIPAddress(c.Request); err != nil {
			l.Warnf(ctx, "webhook.Guard: %v", err)
			response.Forbidden(c)
			c.Abort()
			return
		}
		if err := v.CheckRateLimit(extractIP(c.Request)); err != nil {
			l.Warnf(ctx, "webhook.Guard: %v", err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   err.Error(),
			})
			return
		}
		c.Next()
	}
}
