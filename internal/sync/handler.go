package sync

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"executive-assistant/pkg/log"
	pkgResponse "executive-assistant/pkg/response"
)

// HandleSync starts a sync in the background and acknowledges immediately.
// @Summary Trigger a tracker sync
// @Description Downloads the active projects and rewrites the snapshot file in the background.
// @Tags Sync
// @Produce json
// @Param X-API-Key header string false "Dashboard API key"
// @Success 200 {object} response.Resp "accepted"
// @Router /api/v1/sync [post]
func (h *WebhookHandler) HandleSync(c *gin.Context) {
	traceID := log.TraceID(c.Request.Context())

	go func() {
		bgCtx, cancel := context.WithTimeout(log.WithTraceID(context.Background(), traceID), backgroundTimeout)
		defer cancel()

		out, err := h.uc.Sync(bgCtx)
		switch {
		case errors.Is(err, ErrSyncInProgress):
			h.l.Warnf(bgCtx, "sync: trigger ignored, %v", err)
		case err != nil:
			h.l.Errorf(bgCtx, "sync: background run failed: %v", err)
		default:
			h.l.Infof(bgCtx, "sync: background run kept %d of %d projects", out.Kept, out.Fetched)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
