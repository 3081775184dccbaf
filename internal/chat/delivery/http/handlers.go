package http

import (
	"github.com/gin-gonic/gin"

	"phone-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one assistant turn. Omit session_id to start a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session not found or expired"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// NewSession godoc
// @Summary     Create a chat session
// @Description Starts an empty conversation and returns its id.
// @Tags        Sessions
// @Produce     json
// @Success     201 {object} newSessionResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/new [POST]
func (h *handler) NewSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.uc.NewSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.NewSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newNewSessionResp(id))
}

// DeleteSession godoc
// @Summary     Delete a chat session
// @Description Removes a conversation. Unknown ids are accepted.
// @Tags        Sessions
// @Param       id path string true "Session ID"
// @Success     204 "No Content"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteSession(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.NoContent(c)
}

// History godoc
// @Summary     Get session history
// @Description Returns the stored messages of a live session.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Events godoc
// @Summary     List session events
// @Description Returns the event log rows of a session, oldest first.
// @Tags        Sessions
// @Produce     json
// @Param       id    path  string true  "Session ID"
// @Param       limit query int    false "Max events (default: 100)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.uc.Events(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Events: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newEventsResp(req.SessionID, events))
}

// mapRequestError keeps binding errors as they are and maps domain validation errors.
func (h *handler) mapRequestError(err error) error {
	if err == errInvalidBody {
		return err
	}
	return h.mapError(err)
}
