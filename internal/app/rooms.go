package app

import (
	"github.com/google/uuid"

	"github.com/chitchat/signaling/internal/domain"
)

// RoomDirectory is the ordered list of open group-call rooms.
type RoomDirectory struct {
	rooms []domain.Room
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{}
}

// Create appends a room under a fresh random id and returns it. Ids are
// 128-bit random, so collision with a live room is negligible.
func (d *RoomDirectory) Create(hostConn domain.ConnID, hostPeerID, hostUsername string) domain.Room {
	room := domain.Room{
		RoomID:           domain.RoomID(uuid.NewString()),
		HostPeerID:       hostPeerID,
		HostUsername:     hostUsername,
		HostConnectionID: hostConn,
	}
	d.rooms = append(d.rooms, room)
	return room
}

// RemoveByHostPeerID drops every room hosted under peerID. Nothing stops a
// client from creating two rooms with the same peer id; closing then
// removes both.
func (d *RoomDirectory) RemoveByHostPeerID(peerID string) {
	kept := d.rooms[:0]
	for _, r := range d.rooms {
		if r.HostPeerID != peerID {
			kept = append(kept, r)
		}
	}
	d.rooms = kept
}

// RemoveByConnectionID drops every room hosted by the connection. Used when
// the host disconnects.
func (d *RoomDirectory) RemoveByConnectionID(id domain.ConnID) {
	kept := d.rooms[:0]
	for _, r := range d.rooms {
		if r.HostConnectionID != id {
			kept = append(kept, r)
		}
	}
	d.rooms = kept
}

// Snapshot returns a copy; later mutations are not observable through it.
func (d *RoomDirectory) Snapshot() []domain.Room {
	out := make([]domain.Room, len(d.rooms))
	copy(out, d.rooms)
	return out
}
