// Package realtime implements the chat relay: a room-based pub/sub channel
// that rebroadcasts client-submitted events to other members of the same
// room. It is best-effort UI echo on top of the authoritative HTTP message
// store: nothing is persisted, membership lives in memory and is lost on
// disconnect, and the room identifier is client-supplied and not checked
// against real conversation membership.
package realtime

import "encoding/json"

// Event is the wire format for client and server frames
type Event struct {
	Event string          `json:"event"`
	Room  string          `json:"room,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client event names
const (
	EventJoinRoom       = "join_room"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
)

// joinRequest moves a client into a room, leaving its previous one
type joinRequest struct {
	client *Client
	room   string
}

// broadcast is a payload bound for every member of a room except the sender
type broadcast struct {
	room    string
	sender  *Client
	payload []byte
}

// Hub maintains the set of connected clients and their room membership
type Hub struct {
	rooms      map[string]map[*Client]bool
	membership map[*Client]string
	join       chan joinRequest
	unregister chan *Client
	relay      chan broadcast
}

// NewHub creates a Hub; call Run in a goroutine before serving connections
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		membership: make(map[*Client]string),
		join:       make(chan joinRequest),
		unregister: make(chan *Client),
		relay:      make(chan broadcast),
	}
}

// Run processes join, leave and relay events until the process exits.
// All room-map access happens on this goroutine.
func (h *Hub) Run() {
	for {
		select {
		case req := <-h.join:
			h.leaveCurrentRoom(req.client)
			if h.rooms[req.room] == nil {
				h.rooms[req.room] = make(map[*Client]bool)
			}
			h.rooms[req.room][req.client] = true
			h.membership[req.client] = req.room

		case client := <-h.unregister:
			h.leaveCurrentRoom(client)
			close(client.send)

		case b := <-h.relay:
			for client := range h.rooms[b.room] {
				if client == b.sender {
					continue
				}
				select {
				case client.send <- b.payload:
				default:
					// Slow consumer, force a disconnect; its read pump
					// unregisters it
					client.conn.Close()
				}
			}
		}
	}
}

func (h *Hub) leaveCurrentRoom(client *Client) {
	room, ok := h.membership[client]
	if !ok {
		return
	}
	delete(h.membership, client)
	if members, ok := h.rooms[room]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}
