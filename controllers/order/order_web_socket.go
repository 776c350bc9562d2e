package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/omarghandour/clockyexpress/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connection handlers and checkout broadcasts touch the registry from
// different goroutines.
var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// OrderWebSocket streams newly placed orders to connected admin dashboards.
// GET /products/orders/ws
func OrderWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
