package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	mu        sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// Event is what connected back-office clients receive.
type Event struct {
	Type string      `json:"type"` // e.g. "order.created", "service_request.created"
	Data interface{} `json:"data"`
}

// Handler upgrades the connection and keeps it registered until the
// client goes away.
func Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	mu.Lock()
	wsClients[conn] = true
	mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			mu.Lock()
			delete(wsClients, conn)
			mu.Unlock()
			break
		}
	}
}

// Broadcast fans an event out to every connected client. Write errors
// are ignored; dead connections drop out via the read loop.
func Broadcast(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, payload)
	}
}
