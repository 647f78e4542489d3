package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	g := game.New()
	g.Events().AddListener(msg.NewAnnouncer(color.Stdout))

	bots := player.CreateBots(consts.DemoBots)
	for _, bot := range bots {
		if err := g.AddPlayer(bot.Player); err != nil {
			log.Error(err)
			return
		}
	}

	fmt.Fprint(color.Stdout, msg.Message.Welcome())
	if err := g.Start(); err != nil {
		log.Error(err)
		return
	}
	turns, err := player.Run(g, bots, consts.MaxBotTurns)
	if err != nil {
		log.Error(err)
		return
	}
	if winner := g.Winner(); winner != nil {
		log.Infof("%s won after %d turns\n", winner.Name(), turns)
	}
}
