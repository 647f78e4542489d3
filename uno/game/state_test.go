package game_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestGameState(t *testing.T) {
	t.Run("starts_waiting_to_start", func(t *testing.T) {
		state := game.NewGameState()
		require.True(t, state.Is(game.StateWaitingToStart))
		require.False(t, state.InProgress())
	})

	t.Run("accepts_every_known_state", func(t *testing.T) {
		state := game.NewGameState()
		for _, known := range game.States() {
			require.NoError(t, state.Set(known))
			require.Equal(t, known, state.State())
		}
	})

	t.Run("rejects_unknown_states_without_changing", func(t *testing.T) {
		state := game.NewGameState()
		require.NoError(t, state.Set(game.StateAwaitingWD4Response))

		for _, unknown := range []game.State{0, -1, 99} {
			err := state.Set(unknown)
			require.True(t, errors.Is(err, consts.ErrorsInvalidState))
			require.Equal(t, game.StateAwaitingWD4Response, state.State())
		}
	})

	t.Run("in_progress_only_while_playing", func(t *testing.T) {
		expected := map[game.State]bool{
			game.StateWaitingToStart:         false,
			game.StateWaitingForPlayerToMove: true,
			game.StateAwaitingWD4Response:    true,
			game.StateGameOver:               false,
		}
		state := game.NewGameState()
		for known, inProgress := range expected {
			require.NoError(t, state.Set(known))
			require.Equal(t, inProgress, state.InProgress(), known.String())
		}
	})

	t.Run("names", func(t *testing.T) {
		require.Equal(t, "awaiting_wd4_response", game.StateAwaitingWD4Response.String())
		require.Equal(t, "invalid_state(99)", game.State(99).String())
	})
}
