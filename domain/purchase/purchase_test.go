package purchase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateTransitions(t *testing.T) {
	req := require.New(t)

	req.True(StateIdle.CanTransition(StateCollectingInfo))
	req.True(StateCollectingInfo.CanTransition(StatePersisting))
	req.True(StateCollectingInfo.CanTransition(StateCancelled))
	req.True(StatePersisting.CanTransition(StateAwaitingPayment))
	req.True(StatePersisting.CanTransition(StateFailed))
	req.True(StateAwaitingPayment.CanTransition(StateConfirming))
	req.True(StateAwaitingPayment.CanTransition(StateFailed))
	req.True(StateAwaitingPayment.CanTransition(StateCancelled))
	req.True(StateConfirming.CanTransition(StateSucceeded))
	req.True(StateConfirming.CanTransition(StateFailed))
	req.True(StateFailed.CanTransition(StateCollectingInfo))

	// terminal and illegal moves
	req.False(StateSucceeded.CanTransition(StateCollectingInfo))
	req.False(StateCancelled.CanTransition(StatePersisting))
	req.False(StateIdle.CanTransition(StateAwaitingPayment))
	req.False(StateCollectingInfo.CanTransition(StateConfirming))
	req.False(StatePersisting.CanTransition(StateCancelled))
}
