package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant/internal/model"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, model.Scope, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	sc := model.Scope{UserID: "dashboard_" + c.ClientIP()}
	return req, sc, nil
}

func (h *handler) processListProjectsReq(c *gin.Context) (listProjectsReq, error) {
	var req listProjectsReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processAddNoteReq(c *gin.Context) (addNoteReq, error) {
	var req addNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ProjectID = c.Param("id")
	return req, nil
}

func (h *handler) processListNotesReq(c *gin.Context) (listNotesReq, error) {
	var req listNotesReq
	err := c.ShouldBindQuery(&req)
	return req, err
}
