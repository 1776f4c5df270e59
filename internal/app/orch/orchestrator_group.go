package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/chitchat/signaling/internal/core"
	"github.com/chitchat/signaling/internal/domain"
)

// Group session management. The room directory only tracks hosts; who is
// actually addressable in a room lives in the group table.

// CreateRoom opens a room hosted by the connection, subscribes the host to
// the room's group and announces the new room list to everyone.
func (o *Orchestrator) CreateRoom(id domain.ConnID, p core.CreateRoomPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	room := o.Rooms.Create(id, p.PeerID, p.Username)
	o.Groups.Join(room.RoomID, id)
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("room", string(room.RoomID)).Msg("room created")

	o.broadcastRoomsLocked()
}

// JoinRequest forwards the joiner's media identifiers to the current group
// members, then subscribes the joiner. Forwarding first keeps the joiner
// from hearing its own request. The room's directory entry is not checked:
// a request for an unknown room reaches an empty group and fades out.
func (o *Orchestrator) JoinRequest(id domain.ConnID, p core.JoinRequestPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendGroupLocked(p.RoomID, core.JoinRequestEvent{
		Type:     core.EventJoinRequest,
		PeerID:   p.PeerID,
		StreamID: p.StreamID,
	})
	o.Groups.Join(p.RoomID, id)
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("room", string(p.RoomID)).Msg("join request")
}

// LeaveRoom unsubscribes first so the leaver is excluded from its own
// leave notification.
func (o *Orchestrator) LeaveRoom(id domain.ConnID, p core.LeavePayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Groups.Leave(p.RoomID, id)
	o.sendGroupLocked(p.RoomID, core.LeaveEvent{
		Type:     core.EventLeave,
		StreamID: p.StreamID,
	})
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("room", string(p.RoomID)).Msg("left room")
}

// CloseRoom removes every room hosted under the peer id and announces the
// new room list. Group membership stays as-is; members drop off naturally
// when their connections go away. Closing an unknown peer id is a no-op.
func (o *Orchestrator) CloseRoom(id domain.ConnID, p core.CloseRoomPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Rooms.RemoveByHostPeerID(p.PeerID)
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("peer", p.PeerID).Msg("room closed by host")

	o.broadcastRoomsLocked()
}
