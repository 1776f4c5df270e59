package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chitchat/signaling/internal/domain"
)

func TestGroupTableJoinAndMembers(t *testing.T) {
	g := NewGroupTable()
	g.Join("r1", "c1")
	g.Join("r1", "c2")
	g.Join("r2", "c1")

	assert.ElementsMatch(t, []domain.ConnID{"c1", "c2"}, g.Members("r1"))
	assert.ElementsMatch(t, []domain.ConnID{"c1"}, g.Members("r2"))
}

func TestGroupTableUnknownGroupIsEmpty(t *testing.T) {
	g := NewGroupTable()
	assert.Empty(t, g.Members("nope"))
}

func TestGroupTableLeave(t *testing.T) {
	g := NewGroupTable()
	g.Join("r1", "c1")
	g.Join("r1", "c2")

	g.Leave("r1", "c1")
	assert.ElementsMatch(t, []domain.ConnID{"c2"}, g.Members("r1"))

	// Leaving twice, or leaving a group never joined, is a no-op.
	g.Leave("r1", "c1")
	g.Leave("r9", "c1")
	assert.ElementsMatch(t, []domain.ConnID{"c2"}, g.Members("r1"))
}

func TestGroupTableDropConn(t *testing.T) {
	g := NewGroupTable()
	g.Join("r1", "c1")
	g.Join("r2", "c1")
	g.Join("r2", "c2")

	g.DropConn("c1")
	assert.Empty(t, g.Members("r1"))
	assert.ElementsMatch(t, []domain.ConnID{"c2"}, g.Members("r2"))
}
