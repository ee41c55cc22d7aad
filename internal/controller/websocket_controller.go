package controller

import (
	"encoding/json"
	"fmt"

	"github.com/CharlesD9/ChessX100/internal/model"
	"github.com/CharlesD9/ChessX100/internal/service"
	"github.com/CharlesD9/ChessX100/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type WebSocketController struct {
	gameService *service.GameService
	log         *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, log *zap.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		log:         log,
	}
}

// HandleConnection runs the read loop for one websocket subscriber. The
// client receives a state push on registration and after every accepted move
// or reset; moves it sends are applied exactly like POSTed ones.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	clientID, _ := c.Locals("wsClientID").(string)
	if clientID == "" {
		c.Close()
		return
	}

	wsc.gameService.RegisterConnection(clientID, c)
	defer wsc.gameService.UnregisterConnection(clientID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			wsc.log.Debug("websocket read ended",
				zap.String("client", clientID), zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.log.Warn("websocket message parse error",
				zap.String("client", clientID), zap.Error(err))
			continue
		}
		if err := wsc.handleMessage(msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}
}

func (wsc *WebSocketController) handleMessage(msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req struct {
			From *model.Square `json:"from"`
			To   *model.Square `json:"to"`
		}
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		if req.From == nil || req.To == nil {
			return fmt.Errorf("both from and to squares are required")
		}
		_, err := wsc.gameService.HandleMove(*req.From, *req.To)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, reason string) {
	payload, err := json.Marshal(reason)
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	}); err != nil {
		wsc.log.Warn("websocket error send failed", zap.Error(err))
	}
}
