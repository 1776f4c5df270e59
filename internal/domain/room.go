package domain

type RoomID string

// Room is one open group-call session. The host's peer id belongs to the
// media layer and is opaque to the server.
type Room struct {
	RoomID           RoomID `json:"roomId"`
	HostPeerID       string `json:"hostPeerId"`
	HostUsername     string `json:"hostUsername"`
	HostConnectionID ConnID `json:"hostConnectionId"`
}
