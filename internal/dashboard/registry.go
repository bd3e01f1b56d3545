package dashboard

import "sync"

// Registry tracks which connections watch which interview. Rooms are created
// on first join and pruned when the last watcher leaves. Mutation happens
// only on the admission and close paths; message handlers never touch it.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]map[*Client]struct{})}
}

// Join adds c to the interview's room, creating the room if absent.
// Joining twice leaves a single membership.
func (r *Registry) Join(interviewID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[interviewID]
	if !ok {
		room = make(map[*Client]struct{})
		r.rooms[interviewID] = room
	}
	room[c] = struct{}{}
}

// Leave removes c and prunes the room once it empties. Leaving an unknown
// room or a room c is not in is a no-op.
func (r *Registry) Leave(interviewID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[interviewID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(r.rooms, interviewID)
	}
}

func (r *Registry) RoomSize(interviewID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[interviewID])
}

func (r *Registry) HasRoom(interviewID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[interviewID]
	return ok
}

func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Broadcast sends a frame to every watcher of the interview. Current product
// flows are point-to-point; this exists for fan-out events.
func (r *Registry) Broadcast(interviewID string, frame Frame) {
	r.mu.RLock()
	clients := make([]*Client, 0, len(r.rooms[interviewID]))
	for c := range r.rooms[interviewID] {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	for _, c := range clients {
		c.Send(frame)
	}
}

// Connections snapshots every connection across all rooms.
func (r *Registry) Connections() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Client
	for _, room := range r.rooms {
		for c := range room {
			out = append(out, c)
		}
	}
	return out
}

// Clear drops every room.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = make(map[string]map[*Client]struct{})
}
