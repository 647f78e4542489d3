package player

import (
	"math/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreateBots returns up to amount bots with distinct names, alternating good
// and naive strategies.
func CreateBots(amount int) []*Bot {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rand.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	if amount < 0 {
		amount = 0
	}

	bots := make([]*Bot, 0, amount)
	for i, botName := range names[:amount] {
		strategy := NewGoodPlayer()
		if i%2 == 1 {
			strategy = NewNaivePlayer()
		}
		bots = append(bots, NewBot(botName, strategy))
	}
	return bots
}
