package consts

const (
	MinPlayers = 2
	// MaxPlayers keeps the opening deal within the 107 cards left after the first discard.
	MaxPlayers = 10

	DeckSize         = 108
	StartingHandSize = 7

	SkipDrawAmount        = 1
	DrawTwoAmount         = 2
	WildDrawFourAmount    = 4
	FailedChallengeAmount = 6

	MaxBotTurns = 2000
	DemoBots    = 4
)

type ErrorCode int

const (
	_ ErrorCode = iota
	CodeGameHasNotStarted
	CodeGameHasStarted
	CodeGameIsOver
	CodeNotEnoughPlayers
	CodeGameIsFull
	CodeNotPlayersTurn
	CodePlayerDoesNotHaveThatCard
	CodeInvalidMove
	CodeNoColorChosen
	CodeInvalidColorChoice
	CodeWaitingForWD4Response
	CodeNoWD4ChallengeActive
	CodeInvalidState
)

type Error struct {
	Code ErrorCode
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code ErrorCode, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsGameHasNotStarted         = NewErr(CodeGameHasNotStarted, "Game has not started. ")
	ErrorsGameHasStarted            = NewErr(CodeGameHasStarted, "Game has already started. ")
	ErrorsGameIsOver                = NewErr(CodeGameIsOver, "Game is over. ")
	ErrorsNotEnoughPlayers          = NewErr(CodeNotEnoughPlayers, "Not enough players. ")
	ErrorsGameIsFull                = NewErr(CodeGameIsFull, "Game players is full. ")
	ErrorsNotPlayersTurn            = NewErr(CodeNotPlayersTurn, "Not your turn. ")
	ErrorsPlayerDoesNotHaveThatCard = NewErr(CodePlayerDoesNotHaveThatCard, "Player does not have that card. ")
	ErrorsInvalidMove               = NewErr(CodeInvalidMove, "Card does not match color or type. ")
	ErrorsNoColorChosen             = NewErr(CodeNoColorChosen, "No color chosen for wild card. ")
	ErrorsInvalidColorChoice        = NewErr(CodeInvalidColorChoice, "Invalid color choice. ")
	ErrorsWaitingForWD4Response     = NewErr(CodeWaitingForWD4Response, "Waiting for wild draw four response. ")
	ErrorsNoWD4ChallengeActive      = NewErr(CodeNoWD4ChallengeActive, "No wild draw four challenge active. ")
	ErrorsInvalidState              = NewErr(CodeInvalidState, "Invalid game state. ")
)
