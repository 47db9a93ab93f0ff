package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Notifier pushes order events to connected websocket clients. Clients only
// listen; inbound messages are drained and discarded.
type Notifier struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewNotifier() *Notifier {
	return &Notifier{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (n *Notifier) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := n.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		n.mu.Lock()
		n.clients[conn] = true
		n.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				n.mu.Lock()
				delete(n.clients, conn)
				n.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast sends an event to every connected client, dropping clients whose
// connection has gone away.
func (n *Notifier) Broadcast(event string, payload interface{}) {
	messageBytes, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		log.Println("Error marshaling message:", err)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for client := range n.clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			client.Close()
			delete(n.clients, client)
		}
	}
}
