package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "phone-assistant/internal/chat/delivery/http"
	chatWS "phone-assistant/internal/chat/delivery/ws"
)

// setupChatDomain registers the chat domain's REST and websocket routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. REST: /api/v1/chat, /api/v1/sessions/...
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, srv.mw)

	// 2. Websocket: /api/v1/ws
	ws := chatWS.New(srv.l, srv.chatUC, chatWS.Config{
		AllowedOrigins: srv.allowedOrigins,
		Allow:          srv.mw.AllowClient,
	})
	chatWS.RegisterRoutes(api, ws, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
