package onebot

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"panelbot/config"
)

const (
	redialInterval = 5 * time.Second
	pingInterval   = 30 * time.Second
	writeWait      = 10 * time.Second
)

// Dispatcher turns one command line into one reply.
type Dispatcher func(ctx context.Context, text string) string

// Client keeps a reverse-WebSocket connection to a OneBot v11 gateway and
// feeds prefixed message events through the dispatcher.
type Client struct {
	gatewayURL  string
	accessToken string
	dispatch    Dispatcher
	sendCh      chan []byte
}

func NewClient(cfg *config.Config, dispatch Dispatcher) *Client {
	return &Client{
		gatewayURL:  cfg.OneBot.GatewayURL,
		accessToken: cfg.OneBot.AccessToken,
		dispatch:    dispatch,
		sendCh:      make(chan []byte, 256),
	}
}

// Run dials the gateway and serves events until ctx is cancelled,
// redialing after connection loss.
func (c *Client) Run(ctx context.Context) {
	for {
		conn, err := c.dial(ctx)
		if err != nil {
			zap.L().Error("onebot dial", zap.Error(err), zap.String("url", c.gatewayURL))
		} else {
			zap.L().Info("connected to onebot gateway", zap.String("url", c.gatewayURL))
			c.serve(ctx, conn)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(redialInterval):
		}
	}
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if c.accessToken != "" {
		header.Set("Authorization", "Bearer "+c.accessToken)
	}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.gatewayURL, header)
	if resp != nil {
		defer resp.Body.Close()
	}
	return conn, err
}

func (c *Client) serve(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	go c.writePump(ctx, conn, done)
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			zap.L().Warn("onebot read", zap.Error(err))
			return
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			zap.L().Debug("onebot skip frame", zap.Error(err))
			continue
		}
		text, ok := ev.CommandText()
		if !ok {
			continue
		}

		// one goroutine per command so a slow panel call never stalls the reader
		go func(ev Event, text string) {
			reply := c.dispatch(ctx, text)
			payload, err := json.Marshal(buildReply(&ev, reply))
			if err != nil {
				zap.L().Error("Marshal JSON", zap.Error(err))
				return
			}
			c.enqueue(payload)
		}(ev, text)
	}
}

// enqueue never blocks the caller. WebSocket writes are funneled through
// writePump because gorilla connections allow a single concurrent writer.
func (c *Client) enqueue(payload []byte) {
	select {
	case c.sendCh <- payload:
	default:
		zap.L().Warn("onebot send buffer full, dropping reply")
	}
}

func (c *Client) writePump(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case payload := <-c.sendCh:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				zap.L().Warn("onebot write", zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
