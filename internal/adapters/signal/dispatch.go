package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/chitchat/signaling/internal/core"
	"github.com/chitchat/signaling/internal/domain"
)

// dispatch peeks at the event kind, unmarshals the frame into its typed
// payload and hands it to the orchestrator. Malformed or unknown frames
// are dropped; the sender is never told.
func (ctl *Controller) dispatch(id domain.ConnID, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(id)).Msg("bad json")
		return
	}

	switch env.Type {
	case core.EventRegister:
		var p core.RegisterPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.Register(id, p)
	case core.EventPreOffer:
		var p core.PreOfferPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.PreOffer(id, p)
	case core.EventPreOfferAnswer:
		var p core.PreOfferAnswerPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.PreOfferAnswer(id, p)
	case core.EventOffer:
		var p core.OfferPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.Offer(id, p)
	case core.EventAnswer:
		var p core.AnswerPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.Answer(id, p)
	case core.EventICECandidate:
		var p core.ICECandidatePayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.ICECandidate(id, p)
	case core.EventHangUp:
		var p core.HangUpPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.HangUp(id, p)
	case core.EventCreateRoom:
		var p core.CreateRoomPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.CreateRoom(id, p)
	case core.EventJoinRequest:
		var p core.JoinRequestPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.JoinRequest(id, p)
	case core.EventLeave:
		var p core.LeavePayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.LeaveRoom(id, p)
	case core.EventCloseRoom:
		var p core.CloseRoomPayload
		if !decode(id, env.Type, data, &p) {
			return
		}
		ctl.Orch.CloseRoom(id, p)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown event")
	}
}

func decode(id domain.ConnID, kind string, data []byte, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("conn", string(id)).Str("type", kind).Msg("bad payload")
		return false
	}
	return true
}
