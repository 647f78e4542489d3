package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
)

type State int

const (
	_ State = iota
	StateWaitingToStart
	StateWaitingForPlayerToMove
	StateAwaitingWD4Response
	StateGameOver
)

var stateNames = map[State]string{
	StateWaitingToStart:         "waiting_to_start",
	StateWaitingForPlayerToMove: "waiting_for_player_to_move",
	StateAwaitingWD4Response:    "awaiting_wd4_response",
	StateGameOver:               "game_over",
}

func States() []State {
	return []State{StateWaitingToStart, StateWaitingForPlayerToMove, StateAwaitingWD4Response, StateGameOver}
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("invalid_state(%d)", int(s))
}

// GameState only guarantees that the held value is a known state. Which
// transitions are allowed is decided by the Game guards.
type GameState struct {
	state State
}

func NewGameState() *GameState {
	return &GameState{state: StateWaitingToStart}
}

func (g *GameState) State() State {
	return g.state
}

func (g *GameState) Is(state State) bool {
	return g.state == state
}

func (g *GameState) Set(state State) error {
	if _, ok := stateNames[state]; !ok {
		return fmt.Errorf("%w%s", consts.ErrorsInvalidState, state)
	}
	g.state = state
	return nil
}

func (g *GameState) InProgress() bool {
	return g.state == StateWaitingForPlayerToMove || g.state == StateAwaitingWD4Response
}
