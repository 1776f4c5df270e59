package core

import (
	"github.com/pion/webrtc/v4"

	"github.com/chitchat/signaling/internal/domain"
)

// Event kinds carried in the "type" field of every frame. The inbound and
// relayed outbound kinds share names: a relayed message reaches its target
// tagged exactly like it was sent.
const (
	EventConnection     = "connection"
	EventRegister       = "register"
	EventPreOffer       = "pre-offer"
	EventPreOfferAnswer = "pre-offer-answer"
	EventOffer          = "offer"
	EventAnswer         = "answer"
	EventICECandidate   = "ice-candidate"
	EventHangUp         = "hang-up"
	EventCreateRoom     = "create-room"
	EventJoinRequest    = "join-request"
	EventLeave          = "leave"
	EventCloseRoom      = "close-room"
	EventActiveUsers    = "active-users"
	EventRooms          = "rooms"
)

// Inbound payloads, one struct per event kind. Target connection ids are
// supplied by the client on every message; the server resolves them
// best-effort and never tracks call state.

type RegisterPayload struct {
	Username string `json:"username"`
}

type PreOfferPayload struct {
	CalleeConnectionID domain.ConnID `json:"calleeConnectionId"`
	CallerUsername     string        `json:"callerUsername"`
}

type PreOfferAnswerPayload struct {
	CallerConnectionID domain.ConnID `json:"callerConnectionId"`
	Answer             string        `json:"answer"`
}

type OfferPayload struct {
	CalleeConnectionID domain.ConnID             `json:"calleeConnectionId"`
	Offer              webrtc.SessionDescription `json:"offer"`
}

type AnswerPayload struct {
	CallerConnectionID domain.ConnID             `json:"callerConnectionId"`
	Answer             webrtc.SessionDescription `json:"answer"`
}

type ICECandidatePayload struct {
	TargetConnectionID domain.ConnID           `json:"targetConnectionId"`
	Candidate          webrtc.ICECandidateInit `json:"candidate"`
}

type HangUpPayload struct {
	TargetConnectionID domain.ConnID `json:"targetConnectionId"`
}

type CreateRoomPayload struct {
	PeerID   string `json:"peerId"`
	Username string `json:"username"`
}

type JoinRequestPayload struct {
	RoomID   domain.RoomID `json:"roomId"`
	PeerID   string        `json:"peerId"`
	StreamID string        `json:"streamId"`
}

type LeavePayload struct {
	RoomID   domain.RoomID `json:"roomId"`
	StreamID string        `json:"streamId"`
}

type CloseRoomPayload struct {
	PeerID string `json:"peerId"`
}

// Outbound events. Each carries its own "type" tag so it can be handed to
// the transport as-is.

type ConnectionEvent struct {
	Type         string        `json:"type"`
	ConnectionID domain.ConnID `json:"connectionId"`
}

type ActiveUsersEvent struct {
	Type        string        `json:"type"`
	ActiveUsers []domain.Peer `json:"activeUsers"`
}

type RoomsEvent struct {
	Type  string        `json:"type"`
	Rooms []domain.Room `json:"rooms"`
}

type PreOfferEvent struct {
	Type               string        `json:"type"`
	CallerUsername     string        `json:"callerUsername"`
	CallerConnectionID domain.ConnID `json:"callerConnectionId"`
}

type PreOfferAnswerEvent struct {
	Type   string `json:"type"`
	Answer string `json:"answer"`
}

type OfferEvent struct {
	Type  string                    `json:"type"`
	Offer webrtc.SessionDescription `json:"offer"`
}

type AnswerEvent struct {
	Type   string                    `json:"type"`
	Answer webrtc.SessionDescription `json:"answer"`
}

type ICECandidateEvent struct {
	Type      string                  `json:"type"`
	Candidate webrtc.ICECandidateInit `json:"candidate"`
}

type HangUpEvent struct {
	Type string `json:"type"`
}

type JoinRequestEvent struct {
	Type     string `json:"type"`
	PeerID   string `json:"peerId"`
	StreamID string `json:"streamId"`
}

type LeaveEvent struct {
	Type     string `json:"type"`
	StreamID string `json:"streamId"`
}
