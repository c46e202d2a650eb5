// Package events pushes catalog changes to connected menu screens over
// websocket, so an admin edit shows up without a reload.
package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dapizza/storefront/models"
)

const (
	EventMenuCreated      = "menu_created"
	EventMenuUpdated      = "menu_updated"
	EventMenuDeleted      = "menu_deleted"
	EventMenuAvailability = "menu_availability"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var menuHub = hub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	menuHub.mutex.Lock()
	defer menuHub.mutex.Unlock()
	menuHub.clients[conn] = true
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	menuHub.mutex.Lock()
	defer menuHub.mutex.Unlock()
	delete(menuHub.clients, conn)
	conn.Close()
}

func BroadcastMenuCreated(item models.MenuItem) {
	broadcast(Message{Event: EventMenuCreated, Data: item})
}

func BroadcastMenuUpdated(item models.MenuItem) {
	broadcast(Message{Event: EventMenuUpdated, Data: item})
}

func BroadcastMenuDeleted(id string) {
	broadcast(Message{Event: EventMenuDeleted, Data: map[string]string{"id": id}})
}

func BroadcastMenuAvailability(item models.MenuItem) {
	broadcast(Message{Event: EventMenuAvailability, Data: item})
}

func broadcast(msg Message) {
	menuHub.mutex.Lock()
	defer menuHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	for conn := range menuHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending event to client: %v", err)
		}
	}
}
