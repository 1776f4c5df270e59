// Package orch drives the connection lifecycle: it owns the directories,
// dispatches inbound events to the relay and group handlers, and pushes
// directory snapshots to every connected client.
package orch

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chitchat/signaling/internal/app"
	"github.com/chitchat/signaling/internal/core"
	"github.com/chitchat/signaling/internal/domain"
)

// Orchestrator serializes all registry work behind one mutex. Handlers run
// on the per-connection reader goroutines, so every operation takes the
// lock, mutates, and broadcasts before releasing it; sends are non-blocking
// (core.SignalConnection.TrySend), which keeps the critical section free of
// I/O waits.
type Orchestrator struct {
	mu     sync.Mutex
	conns  map[domain.ConnID]core.SignalConnection
	Peers  *app.PeerDirectory
	Rooms  *app.RoomDirectory
	Groups *app.GroupTable
}

func New(peers *app.PeerDirectory, rooms *app.RoomDirectory, groups *app.GroupTable) *Orchestrator {
	return &Orchestrator{
		conns:  make(map[domain.ConnID]core.SignalConnection),
		Peers:  peers,
		Rooms:  rooms,
		Groups: groups,
	}
}

// Connect attaches a fresh connection. The peer directory is untouched
// until the client registers a username.
func (o *Orchestrator) Connect(id domain.ConnID, conn core.SignalConnection) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.conns[id] = conn
	log.Info().Str("module", "orch").Str("conn", string(id)).Msg("connection attached")

	o.sendLocked(id, core.ConnectionEvent{Type: core.EventConnection, ConnectionID: id})
}

// Register binds a username to the connection and pushes both directory
// snapshots, so a freshly registered client immediately sees current rooms.
func (o *Orchestrator) Register(id domain.ConnID, p core.RegisterPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Peers.Register(id, p.Username)
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("username", p.Username).Msg("registered")

	o.broadcastActiveUsersLocked()
	o.broadcastRoomsLocked()
}

// Disconnect cleans both directories, each followed by its broadcast, and
// drops all group memberships for the connection.
func (o *Orchestrator) Disconnect(id domain.ConnID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.conns, id)

	o.Peers.Remove(id)
	o.broadcastActiveUsersLocked()

	o.Rooms.RemoveByConnectionID(id)
	o.broadcastRoomsLocked()

	o.Groups.DropConn(id)
	log.Info().Str("module", "orch").Str("conn", string(id)).Msg("connection detached")
}

func (o *Orchestrator) broadcastActiveUsersLocked() {
	o.broadcastLocked(core.ActiveUsersEvent{
		Type:        core.EventActiveUsers,
		ActiveUsers: o.Peers.Snapshot(),
	})
}

func (o *Orchestrator) broadcastRoomsLocked() {
	o.broadcastLocked(core.RoomsEvent{
		Type:  core.EventRooms,
		Rooms: o.Rooms.Snapshot(),
	})
}

func (o *Orchestrator) broadcastLocked(v any) {
	frame, ok := marshal(v)
	if !ok {
		return
	}
	for id, conn := range o.conns {
		if err := conn.TrySend(frame); err != nil {
			log.Debug().Str("module", "orch").Str("conn", string(id)).Err(err).Msg("broadcast dropped")
		}
	}
}

// sendLocked delivers one event to one connection. A missing or saturated
// target is a silent drop, never an error to the sender.
func (o *Orchestrator) sendLocked(id domain.ConnID, v any) {
	conn, ok := o.conns[id]
	if !ok {
		log.Debug().Str("module", "orch").Str("conn", string(id)).Msg("target not connected, dropped")
		return
	}
	frame, ok := marshal(v)
	if !ok {
		return
	}
	if err := conn.TrySend(frame); err != nil {
		log.Debug().Str("module", "orch").Str("conn", string(id)).Err(err).Msg("send dropped")
	}
}

func (o *Orchestrator) sendGroupLocked(roomID domain.RoomID, v any) {
	for _, id := range o.Groups.Members(roomID) {
		o.sendLocked(id, v)
	}
}

func marshal(v any) (core.Frame, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Str("module", "orch").Err(err).Msg("marshal event")
		return nil, false
	}
	return core.Frame(b), true
}
