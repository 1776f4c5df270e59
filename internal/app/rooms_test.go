package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitchat/signaling/internal/domain"
)

func TestRoomDirectoryCreateAssignsFreshIDs(t *testing.T) {
	d := NewRoomDirectory()
	seen := make(map[domain.RoomID]bool)
	for i := 0; i < 100; i++ {
		room := d.Create("c1", "p1", "alice")
		require.NotEmpty(t, room.RoomID)
		assert.False(t, seen[room.RoomID], "room id reused: %s", room.RoomID)
		seen[room.RoomID] = true
	}
	assert.Len(t, d.Snapshot(), 100)
}

func TestRoomDirectoryCreateKeepsHostFields(t *testing.T) {
	d := NewRoomDirectory()
	room := d.Create("c1", "p1", "alice")

	assert.Equal(t, "p1", room.HostPeerID)
	assert.Equal(t, "alice", room.HostUsername)
	assert.Equal(t, domain.ConnID("c1"), room.HostConnectionID)

	snap := d.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, room, snap[0])
}

func TestRoomDirectoryRemoveByHostPeerID(t *testing.T) {
	d := NewRoomDirectory()
	d.Create("c1", "p1", "alice")
	d.Create("c2", "p2", "bob")

	d.RemoveByHostPeerID("p1")
	snap := d.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "p2", snap[0].HostPeerID)

	// Unknown peer id is a no-op.
	d.RemoveByHostPeerID("p1")
	assert.Len(t, d.Snapshot(), 1)
}

func TestRoomDirectoryRemoveByHostPeerIDRemovesAllMatches(t *testing.T) {
	d := NewRoomDirectory()
	d.Create("c1", "p1", "alice")
	d.Create("c1", "p1", "alice")

	d.RemoveByHostPeerID("p1")
	assert.Empty(t, d.Snapshot())
}

func TestRoomDirectoryRemoveByConnectionID(t *testing.T) {
	d := NewRoomDirectory()
	d.Create("c1", "p1", "alice")
	d.Create("c2", "p2", "bob")

	d.RemoveByConnectionID("c2")
	snap := d.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, domain.ConnID("c1"), snap[0].HostConnectionID)

	d.RemoveByConnectionID("c3")
	assert.Len(t, d.Snapshot(), 1)
}

func TestRoomDirectorySnapshotIsolated(t *testing.T) {
	d := NewRoomDirectory()
	d.Create("c1", "p1", "alice")

	snap := d.Snapshot()
	d.RemoveByHostPeerID("p1")

	assert.Len(t, snap, 1)
	assert.Empty(t, d.Snapshot())
}
