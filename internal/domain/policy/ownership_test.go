package policy

import (
	"testing"

	"game_catalog/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	game := &model.Game{ID: "g1", OwnerID: "alice"}
	review := &model.Review{ID: "r1", OwnerID: "bob"}

	assert.True(t, CanMutate("alice", game))
	assert.False(t, CanMutate("bob", game))
	assert.True(t, CanMutate("bob", review))
	assert.False(t, CanMutate("alice", review))
	assert.False(t, CanMutate("", game))
}
