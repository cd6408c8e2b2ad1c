package router

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"panelbot/biz/router/middleware"
	"panelbot/config"
)

type BotService interface {
	Dispatch(ctx context.Context, text string) string
}

type BotHandler struct {
	svc BotService
}

func MyRouter(r *server.Hertz, b BotService, cfg *config.Config) {
	handler := &BotHandler{
		svc: b,
	}

	root := r.Group("/api/v1")
	{
		root.GET("/healthz", handler.Healthz)
		botH := root.Group("/bot")
		{
			botH.POST("/messages", append(middleware.Protected(cfg.Webhook.Secret), handler.HandleMessage)...)
		}
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type inboundMessage struct {
	MessageID string `json:"message_id"`
	Text      string `json:"text,required" vd:"len($)<2000; msg:'text must be shorter than 2000 chars'"`
}

type messageReply struct {
	MessageID string `json:"message_id"`
	Reply     string `json:"reply"`
}

// HandleMessage relays one chat message to the command router and returns
// the rendered reply. Always 200 for a well-formed message: command failures
// are part of the reply text, not transport errors.
func (m *BotHandler) HandleMessage(ctx context.Context, c *app.RequestContext) {
	var req inboundMessage

	err := c.BindAndValidate(&req)
	if err != nil {
		c.JSON(consts.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if req.MessageID == "" {
		req.MessageID = uuid.New().String()
	}

	reply := m.svc.Dispatch(ctx, req.Text)
	c.JSON(http.StatusOK, messageReply{
		MessageID: req.MessageID,
		Reply:     reply,
	})
}

func (m *BotHandler) Healthz(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
