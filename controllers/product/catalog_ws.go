package productcontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
)

// Catalog change feed: clients subscribe over websocket and receive every
// product write, so they can refresh the snapshot they pass into the
// recommender or re-validate cart stock.

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type catalogEvent struct {
	Event   string         `json:"event"` // created, updated, deleted
	Product models.Product `json:"product"`
}

// GET /catalog/ws
func CatalogWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastCatalogChange pushes a product write to every subscriber.
func BroadcastCatalogChange(event string, product models.Product) {
	data, err := json.Marshal(catalogEvent{Event: event, Product: product})
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}
