package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// connection is one browser tab. It remembers the session it plays in.
type connection struct {
	ws        *websocket.Conn
	writeMu   sync.Mutex
	sessionID string
}

func newConnection(ws *websocket.Conn) *connection {
	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	return &connection{ws: ws}
}

func (that *connection) send(action string, payload ResponsePayload) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))

	if err := that.ws.WriteJSON(Response{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action string, err error) error {
	return that.send(action, errorPayload(err))
}

// keepAlive - pings the client until stop is closed.
func (that *connection) keepAlive(stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			that.writeMu.Lock()
			err := that.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			that.writeMu.Unlock()

			if err != nil {
				return
			}
		}
	}
}

func (that *connection) close() {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	_ = that.ws.Close()
}
