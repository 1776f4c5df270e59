package app

import "github.com/chitchat/signaling/internal/domain"

// GroupTable is the server-side group addressing mechanism: it maps a room
// id to the set of connections subscribed to it. Membership here is
// deliberately independent of the RoomDirectory's bookkeeping, so sending
// to a group that has no directory entry simply reaches whoever is
// subscribed (possibly nobody).
type GroupTable struct {
	groups map[domain.RoomID]map[domain.ConnID]struct{}
}

func NewGroupTable() *GroupTable {
	return &GroupTable{groups: make(map[domain.RoomID]map[domain.ConnID]struct{})}
}

func (g *GroupTable) Join(roomID domain.RoomID, id domain.ConnID) {
	members, ok := g.groups[roomID]
	if !ok {
		members = make(map[domain.ConnID]struct{})
		g.groups[roomID] = members
	}
	members[id] = struct{}{}
}

func (g *GroupTable) Leave(roomID domain.RoomID, id domain.ConnID) {
	members, ok := g.groups[roomID]
	if !ok {
		return
	}
	delete(members, id)
	if len(members) == 0 {
		delete(g.groups, roomID)
	}
}

// DropConn removes the connection from every group it joined.
func (g *GroupTable) DropConn(id domain.ConnID) {
	for roomID, members := range g.groups {
		delete(members, id)
		if len(members) == 0 {
			delete(g.groups, roomID)
		}
	}
}

// Members returns the current subscribers of roomID; empty when the group
// does not exist.
func (g *GroupTable) Members(roomID domain.RoomID) []domain.ConnID {
	members := g.groups[roomID]
	out := make([]domain.ConnID, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}
