package player

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Run lets the bots move until the game is over or maxTurns moves were made,
// and returns the number of moves. Every player at the table must be a bot.
func Run(g *game.Game, bots []*Bot, maxTurns int) (int, error) {
	if g.State() == game.StateWaitingToStart {
		return 0, consts.ErrorsGameHasNotStarted
	}

	turns := 0
	for turns < maxTurns && g.State() != game.StateGameOver {
		moved := false
		for _, bot := range bots {
			acted, err := bot.Act(g)
			if err != nil {
				return turns, err
			}
			if acted {
				moved = true
				break
			}
		}
		if !moved {
			return turns, consts.ErrorsNotPlayersTurn
		}
		turns++
	}

	if g.State() != game.StateGameOver {
		log.Infof("uno game stopped after %d turns without a winner\n", turns)
	}
	return turns, nil
}
