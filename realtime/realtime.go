package realtime

import (
	"sync"

	"sportsday/metrics"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	ChannelScoreboard = "scoreboard"

	UpdateScoreboard = "scoreboard"
	UpdateMatch      = "match"
	UpdateResults    = "results"
	UpdateVotes      = "votes"
)

var (
	channelClients = make(map[string]map[*websocket.Conn]bool) // Map of channel name to connected clients
	broadcast      = make(chan Update, 64)                      // Broadcast channel for updates
	mutex          sync.Mutex                                   // Mutex to protect channelClients map
)

// Update is one message pushed to the subscribers of a channel
type Update struct {
	Channel    string      `json:"channel"`
	UpdateType string      `json:"updateType"`
	Payload    interface{} `json:"payload"`
}

// EventChannel names the channel carrying the updates of one event
func EventChannel(eventID string) string {
	return "event:" + eventID
}

// RegisterClient adds a WebSocket client to a channel
func RegisterClient(channel string, conn *websocket.Conn) {
	mutex.Lock()
	if channelClients[channel] == nil {
		channelClients[channel] = make(map[*websocket.Conn]bool)
	}
	channelClients[channel][conn] = true
	mutex.Unlock()
	metrics.WebsocketClients.Inc()
}

// UnregisterClient removes a WebSocket client from a channel
func UnregisterClient(channel string, conn *websocket.Conn) {
	mutex.Lock()
	defer mutex.Unlock()
	if clients, exists := channelClients[channel]; exists {
		if _, ok := clients[conn]; ok {
			delete(clients, conn)
			metrics.WebsocketClients.Dec()
		}
		if len(clients) == 0 {
			delete(channelClients, channel)
		}
	}
}

// ClientCount returns the number of clients subscribed to a channel
func ClientCount(channel string) int {
	mutex.Lock()
	defer mutex.Unlock()
	return len(channelClients[channel])
}

// Publish queues an update for the subscribers of its channel.
// Updates are dropped when the queue is full; dashboards also poll.
func Publish(update Update) {
	select {
	case broadcast <- update:
	default:
		log.WithField("channel", update.Channel).Warn("realtime queue full, update dropped")
	}
}

func handleBroadcast() {
	for update := range broadcast {
		mutex.Lock()
		if clients, exists := channelClients[update.Channel]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.WithError(err).Debug("websocket write failed, dropping client")
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
