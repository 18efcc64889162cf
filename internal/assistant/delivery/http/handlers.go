package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Runs one utterance through the session's conversation. Omit session_id to start a new session.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, req.toInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(out))
}

// Session godoc
// @Summary     Get session state
// @Description Returns the gate state, pending note and stored turns of a session.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Session(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(out))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Drops the conversation memory of a session. A pending action or note is kept.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHistory(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ListProjects godoc
// @Summary     List projects
// @Description Returns a page of the project snapshot, optionally filtered by name.
// @Tags        Dashboard
// @Produce     json
// @Param       q      query string false "Name fragment"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listProjectsResp
// @Router      /api/v1/projects [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListProjectsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListProjects(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListProjectsResp(out))
}

// ProjectDetail godoc
// @Summary     Get project detail
// @Description Returns a project with its notes, most recent first.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} projectDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) ProjectDetail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ProjectDetail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProjectDetailResp(out))
}

// AddNote godoc
// @Summary     Add a note to a project
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Project ID"
// @Param       body body addNoteReq true "Note"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id}/notes [POST]
func (h *handler) AddNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	note, err := h.uc.AddNote(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddNote: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newNoteResp(note))
}

// ListNotes godoc
// @Summary     List notes
// @Tags        Dashboard
// @Produce     json
// @Param       project_id query string false "Project ID"
// @Param       limit      query int    false "Max notes (default: 50)"
// @Success     200 {array} noteResp
// @Router      /api/v1/notes [GET]
func (h *handler) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListNotesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	notes, err := h.uc.ListNotes(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListNotes: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newNotesResp(notes))
}

// Metrics godoc
// @Summary     Portfolio metrics
// @Description Totals by completion band, average completion and projects below 30%.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} metricsResp
// @Router      /api/v1/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Metrics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Metrics: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMetricsResp(out))
}
