package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processEventsReq binds the events query parameters + URI param.
func (h *handler) processEventsReq(c *gin.Context) (eventsReq, error) {
	var req eventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	req.SessionID = c.Param("id")
	return req, req.validate()
}
