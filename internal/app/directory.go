// Package app holds the in-memory registries behind the signaling relay.
// The structures here are plain data with no locking of their own: the
// orchestrator owns them and serializes every mutation and read behind a
// single mutex, so a mutate-then-broadcast sequence is one atomic unit.
package app

import "github.com/chitchat/signaling/internal/domain"

// PeerDirectory is the ordered list of registered connections.
type PeerDirectory struct {
	peers []domain.Peer
}

func NewPeerDirectory() *PeerDirectory {
	return &PeerDirectory{}
}

// Register adds the projection for id, replacing any previous entry with
// the same connection id. Duplicate usernames are permitted.
func (d *PeerDirectory) Register(id domain.ConnID, username string) {
	d.Remove(id)
	d.peers = append(d.peers, domain.Peer{Username: username, ConnectionID: id})
}

// Remove drops every entry for id. Removing an absent id is a no-op.
func (d *PeerDirectory) Remove(id domain.ConnID) {
	kept := d.peers[:0]
	for _, p := range d.peers {
		if p.ConnectionID != id {
			kept = append(kept, p)
		}
	}
	d.peers = kept
}

// Snapshot returns a copy; later mutations are not observable through it.
func (d *PeerDirectory) Snapshot() []domain.Peer {
	out := make([]domain.Peer, len(d.peers))
	copy(out, d.peers)
	return out
}
