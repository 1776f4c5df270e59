package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitchat/signaling/internal/domain"
)

func TestPeerDirectoryRegisterAndSnapshot(t *testing.T) {
	d := NewPeerDirectory()
	d.Register("c1", "alice")
	d.Register("c2", "bob")

	snap := d.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, domain.Peer{Username: "alice", ConnectionID: "c1"}, snap[0])
	assert.Equal(t, domain.Peer{Username: "bob", ConnectionID: "c2"}, snap[1])
}

func TestPeerDirectoryRegisterReplaces(t *testing.T) {
	d := NewPeerDirectory()
	d.Register("c1", "alice")
	d.Register("c1", "alice2")

	snap := d.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "alice2", snap[0].Username)
}

func TestPeerDirectoryDuplicateUsernamesAllowed(t *testing.T) {
	d := NewPeerDirectory()
	d.Register("c1", "alice")
	d.Register("c2", "alice")

	assert.Len(t, d.Snapshot(), 2)
}

func TestPeerDirectoryRemoveIdempotent(t *testing.T) {
	d := NewPeerDirectory()
	d.Register("c1", "alice")

	d.Remove("c1")
	assert.Empty(t, d.Snapshot())

	d.Remove("c1")
	d.Remove("never-seen")
	assert.Empty(t, d.Snapshot())
}

func TestPeerDirectorySnapshotIsolated(t *testing.T) {
	d := NewPeerDirectory()
	d.Register("c1", "alice")

	snap := d.Snapshot()
	d.Register("c2", "bob")
	d.Remove("c1")

	require.Len(t, snap, 1)
	assert.Equal(t, domain.ConnID("c1"), snap[0].ConnectionID)
}
