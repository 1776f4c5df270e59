package orch

import (
	"github.com/chitchat/signaling/internal/core"
	"github.com/chitchat/signaling/internal/domain"
)

// Handshake relay. Each operation is pure routing: re-tag the payload under
// the same event kind and deliver it to the target connection the client
// named. No retries, no call-state tracking; a dead target means the
// message vanishes.

// PreOffer opens a call attempt. The caller's connection id is attached
// server-side so the callee can answer without trusting the payload.
func (o *Orchestrator) PreOffer(from domain.ConnID, p core.PreOfferPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendLocked(p.CalleeConnectionID, core.PreOfferEvent{
		Type:               core.EventPreOffer,
		CallerUsername:     p.CallerUsername,
		CallerConnectionID: from,
	})
}

func (o *Orchestrator) PreOfferAnswer(from domain.ConnID, p core.PreOfferAnswerPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendLocked(p.CallerConnectionID, core.PreOfferAnswerEvent{
		Type:   core.EventPreOfferAnswer,
		Answer: p.Answer,
	})
}

func (o *Orchestrator) Offer(from domain.ConnID, p core.OfferPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendLocked(p.CalleeConnectionID, core.OfferEvent{
		Type:  core.EventOffer,
		Offer: p.Offer,
	})
}

func (o *Orchestrator) Answer(from domain.ConnID, p core.AnswerPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendLocked(p.CallerConnectionID, core.AnswerEvent{
		Type:   core.EventAnswer,
		Answer: p.Answer,
	})
}

func (o *Orchestrator) ICECandidate(from domain.ConnID, p core.ICECandidatePayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendLocked(p.TargetConnectionID, core.ICECandidateEvent{
		Type:      core.EventICECandidate,
		Candidate: p.Candidate,
	})
}

func (o *Orchestrator) HangUp(from domain.ConnID, p core.HangUpPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sendLocked(p.TargetConnectionID, core.HangUpEvent{Type: core.EventHangUp})
}
