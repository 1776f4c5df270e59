// Package domain contains entities without logic, just meta-data.
package domain

// ConnID is the opaque identifier the transport assigns to one live
// connection. It is never reused while the connection is alive.
type ConnID string

// Peer is the projection of a registered connection that gets broadcast
// to every client as part of the active-users list.
type Peer struct {
	Username     string `json:"username"`
	ConnectionID ConnID `json:"connectionId"`
}
