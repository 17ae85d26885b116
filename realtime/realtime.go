package realtime

import (
	"sync"

	"api/logging"
	"api/metrics"
	"api/models"

	"github.com/gorilla/websocket"
)

var (
	leagueClients = make(map[string]map[*websocket.Conn]bool) // Map of league ID to connected clients
	broadcast     = make(chan Update)                         // Broadcast channel for updates
	mutex         sync.Mutex                                  // Mutex to protect leagueClients map
)

// Update wraps a notification record for fan-out to one league's clients
type Update struct {
	LeagueID     string              `json:"league_id"`
	Notification models.Notification `json:"notification"`
}

// RegisterClient adds a WebSocket client to a specific league
func RegisterClient(leagueID string, conn *websocket.Conn) {
	mutex.Lock()
	if leagueClients[leagueID] == nil {
		leagueClients[leagueID] = make(map[*websocket.Conn]bool)
	}
	leagueClients[leagueID][conn] = true
	mutex.Unlock()
	metrics.WebsocketClients.Inc()
}

// UnregisterClient removes a WebSocket client from a specific league
func UnregisterClient(leagueID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := leagueClients[leagueID]; exists {
		if clients[conn] {
			metrics.WebsocketClients.Dec()
		}
		delete(clients, conn)
		if len(clients) == 0 {
			delete(leagueClients, leagueID)
		}
	}
	mutex.Unlock()
}

// ClientCount returns the number of clients subscribed to a league
func ClientCount(leagueID string) int {
	mutex.Lock()
	defer mutex.Unlock()
	return len(leagueClients[leagueID])
}

// BroadcastNotification sends a notification to all clients connected to its league.
// Delivery is best-effort: clients treat updates as hints to re-fetch state.
func BroadcastNotification(notification models.Notification) {
	broadcast <- Update{LeagueID: notification.LeagueID, Notification: notification}
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := leagueClients[update.LeagueID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					logging.Log.Warnf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
					metrics.WebsocketClients.Dec()
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
