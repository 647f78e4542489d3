package game

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Game runs a single round. It is not safe for concurrent use; callers
// must serialise every call on the same instance.
type Game struct {
	state       *GameState
	players     []*Player
	cycler      *Cycler
	drawPile    *Pile
	discardPile *Pile
	shuffler    Shuffler
	events      *event.Emitters
	winner      *Player
}

func New() *Game {
	return NewWithShuffler(NewRandomShuffler(time.Now().UnixNano()))
}

func NewWithShuffler(shuffler Shuffler) *Game {
	return &Game{
		state:       NewGameState(),
		players:     make([]*Player, 0, consts.MaxPlayers),
		cycler:      NewCycler(0),
		drawPile:    NewPile(NewDeck()...),
		discardPile: NewPile(),
		shuffler:    shuffler,
		events:      event.NewEmitters(),
	}
}

func (g *Game) Events() *event.Emitters {
	return g.events
}

func (g *Game) State() State {
	return g.state.State()
}

// CurrentPlayer is nil until the game starts.
func (g *Game) CurrentPlayer() *Player {
	if g.state.Is(StateWaitingToStart) || len(g.players) == 0 {
		return nil
	}
	return g.players[g.cycler.Current()]
}

func (g *Game) NextPlayer() *Player {
	if g.state.Is(StateWaitingToStart) || len(g.players) == 0 {
		return nil
	}
	return g.players[g.cycler.Peek(1)]
}

// Players returns the players in seating order.
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// TurnOrder returns the players starting with the current one, following the
// direction of play.
func (g *Game) TurnOrder() []*Player {
	if g.CurrentPlayer() == nil {
		return g.Players()
	}
	players := make([]*Player, 0, len(g.players))
	for step := 0; step < len(g.players); step++ {
		players = append(players, g.players[g.cycler.Peek(step)])
	}
	return players
}

func (g *Game) DrawPile() []card.Card {
	return g.drawPile.Cards()
}

func (g *Game) DiscardPile() []card.Card {
	return g.discardPile.Cards()
}

func (g *Game) TopCard() card.Card {
	return g.discardPile.Top()
}

func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) AddPlayer(player *Player) error {
	if g.state.Is(StateGameOver) {
		return consts.ErrorsGameIsOver
	}
	if !g.state.Is(StateWaitingToStart) {
		return consts.ErrorsGameHasStarted
	}
	if g.seated(player) {
		return nil
	}
	if len(g.players) >= consts.MaxPlayers {
		return consts.ErrorsGameIsFull
	}
	g.players = append(g.players, player)
	return nil
}

func (g *Game) Start() error {
	if g.state.Is(StateGameOver) {
		return consts.ErrorsGameIsOver
	}
	if !g.state.Is(StateWaitingToStart) {
		return consts.ErrorsGameHasStarted
	}
	if len(g.players) < consts.MinPlayers {
		return consts.ErrorsNotEnoughPlayers
	}

	g.drawPile.Shuffle(g.shuffler)
	firstCard, _ := g.drawPile.Pop()
	g.discardPile.Add(firstCard)

	g.cycler = NewCycler(len(g.players))
	for _, player := range g.players {
		player.RemoveAllCardsFromHand()
		for i := 0; i < consts.StartingHandSize; i++ {
			dealt, _ := g.drawPile.Pop()
			player.PutCardInHand(dealt)
		}
	}

	g.transition(StateWaitingForPlayerToMove)
	log.Infof("uno game started with %d players, first card %s\n", len(g.players), firstCard.Rank())
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	return nil
}

func (g *Game) Play(player *Player, cardPlayed card.Card, colorChoice color.Color) error {
	if g.state.Is(StateGameOver) {
		return consts.ErrorsGameIsOver
	}
	if !g.state.InProgress() {
		return consts.ErrorsGameHasNotStarted
	}
	if player != g.CurrentPlayer() {
		return consts.ErrorsNotPlayersTurn
	}
	if g.state.Is(StateAwaitingWD4Response) {
		return consts.ErrorsWaitingForWD4Response
	}
	if !player.HasCard(cardPlayed) {
		return consts.ErrorsPlayerDoesNotHaveThatCard
	}
	if cardPlayed.IsWild() && colorChoice == color.None {
		return consts.ErrorsNoColorChosen
	}
	if colorChoice != color.None && !colorChoice.Valid() {
		return consts.ErrorsInvalidColorChoice
	}
	if !CardCanBePlayed(cardPlayed, g.discardPile.Cards()) {
		return consts.ErrorsInvalidMove
	}

	played, err := player.TakeCardFromHand(cardPlayed)
	if err != nil {
		return err
	}
	g.discardPile.Add(played)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: player.Name(), Card: played})

	if player.HandSize() == 0 {
		g.finish(player)
		return nil
	}

	playerCount := len(g.players)
	if PlayIsReversed(played, playerCount) {
		g.cycler.Reverse()
		g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{PlayerName: player.Name()})
	}
	if NextPlayerMustDrawTwo(played) {
		g.drawCards(g.NextPlayer(), consts.DrawTwoAmount)
	}
	if CardPlayedChangesColor(played) {
		g.discardPile.ReplaceTop(played.WithColor(colorChoice))
		g.events.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: player.Name(), Color: colorChoice})
	}
	if CardInitiatesChallenge(played) {
		g.transition(StateAwaitingWD4Response)
		return nil
	}

	if NextPlayerIsSkipped(played, playerCount) {
		g.cycler.Advance(2)
	} else {
		g.cycler.Advance(1)
	}
	return nil
}

// Skip lets the current player draw a card instead of playing.
func (g *Game) Skip(player *Player) error {
	if player != g.CurrentPlayer() {
		return consts.ErrorsNotPlayersTurn
	}
	if !g.state.InProgress() {
		return consts.ErrorsGameHasNotStarted
	}
	if g.state.Is(StateAwaitingWD4Response) {
		return consts.ErrorsWaitingForWD4Response
	}

	g.drawCards(player, consts.SkipDrawAmount)
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: player.Name()})
	g.cycler.Next()
	return nil
}

// Challenge disputes the wild draw four on top of the discard pile. A failed
// challenge costs the challenger six cards and leaves the turn where it is; a
// successful one makes the accused draw four and passes the turn on.
func (g *Game) Challenge(challenger *Player) error {
	if !g.state.Is(StateAwaitingWD4Response) {
		return consts.ErrorsNoWD4ChallengeActive
	}
	if challenger != g.NextPlayer() {
		return consts.ErrorsNotPlayersTurn
	}

	accused := g.CurrentPlayer()
	payload := event.ChallengeResolvedPayload{
		ChallengerName: challenger.Name(),
		AccusedName:    accused.Name(),
		Challenged:     true,
	}
	if WD4WasPlayedLegally(accused.Hand(), g.discardPile.Cards()) {
		g.drawCards(challenger, consts.FailedChallengeAmount)
		payload.PlayedLegally = true
		payload.PenalizedName = challenger.Name()
		payload.Penalty = consts.FailedChallengeAmount
	} else {
		g.drawCards(accused, consts.WildDrawFourAmount)
		g.cycler.Next()
		payload.PenalizedName = accused.Name()
		payload.Penalty = consts.WildDrawFourAmount
	}

	g.transition(StateWaitingForPlayerToMove)
	log.Infof("wild draw four challenged by %s, legal: %v\n", challenger.Name(), payload.PlayedLegally)
	g.events.ChallengeResolved.Emit(payload)
	return nil
}

// Accept takes the wild draw four penalty without disputing it.
func (g *Game) Accept(challenger *Player) error {
	if !g.state.Is(StateAwaitingWD4Response) {
		return consts.ErrorsNoWD4ChallengeActive
	}
	if challenger != g.NextPlayer() {
		return consts.ErrorsNotPlayersTurn
	}

	g.drawCards(challenger, consts.WildDrawFourAmount)
	g.transition(StateWaitingForPlayerToMove)
	g.events.ChallengeResolved.Emit(event.ChallengeResolvedPayload{
		ChallengerName: challenger.Name(),
		AccusedName:    g.CurrentPlayer().Name(),
		PenalizedName:  challenger.Name(),
		Penalty:        consts.WildDrawFourAmount,
	})
	return nil
}

// View extracts what the given player is allowed to see.
func (g *Game) View(player *Player) View {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make(map[string]int, len(g.players))
	for _, seated := range g.TurnOrder() {
		playerSequence = append(playerSequence, seated.Name())
		playerHandCounts[seated.Name()] = seated.HandSize()
	}

	var hand []card.Card
	if player != nil {
		hand = player.Hand()
	}
	return View{
		State:             g.State(),
		LastPlayedCard:    g.discardPile.Top(),
		PlayedCards:       g.discardPile.Cards(),
		CurrentPlayerHand: hand,
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DrawPileSize:      g.drawPile.Len(),
	}
}

func (g *Game) seated(player *Player) bool {
	for _, seatedPlayer := range g.players {
		if seatedPlayer == player {
			return true
		}
	}
	return false
}

func (g *Game) finish(winner *Player) {
	g.winner = winner
	g.transition(StateGameOver)
	log.Infof("uno game over, %s wins\n", winner.Name())
	g.events.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: winner.Name()})
}

func (g *Game) transition(state State) {
	if err := g.state.Set(state); err != nil {
		panic(err)
	}
}

func (g *Game) drawCards(player *Player, amount int) {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, ok := g.drawOne()
		if !ok {
			log.Infof("no cards left to draw, %s drew %d of %d\n", player.Name(), len(drawn), amount)
			break
		}
		player.PutCardInHand(c)
		drawn = append(drawn, c)
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: player.Name(), Cards: drawn})
}

// drawOne pops the draw pile and refills it from the discards as soon as it
// runs dry.
func (g *Game) drawOne() (card.Card, bool) {
	if g.drawPile.Empty() {
		g.reshuffle()
	}
	drawn, ok := g.drawPile.Pop()
	if !ok {
		return drawn, false
	}
	if g.drawPile.Empty() {
		g.reshuffle()
	}
	return drawn, true
}

// reshuffle keeps the top discard in place and turns the rest of the discard
// pile into a new draw pile.
func (g *Game) reshuffle() {
	if g.discardPile.Len() <= 1 {
		return
	}
	discards := g.discardPile.Cards()
	top := discards[len(discards)-1]
	rest := discards[:len(discards)-1]
	for i, discarded := range rest {
		rest[i] = discarded.Base()
	}

	g.discardPile.Reset(top)
	g.drawPile.Reset(rest...)
	g.drawPile.Shuffle(g.shuffler)

	log.Infof("draw pile empty, reshuffled %d discards\n", len(rest))
	g.events.DrawPileEmptied.Emit(event.DrawPileEmptiedPayload{Reshuffled: len(rest)})
}
