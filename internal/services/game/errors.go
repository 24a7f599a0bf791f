package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrWordsExhausted     GameError = "no unused words left"
	ErrInvalidWord        GameError = "invalid word"
	ErrUnauthorized       GameError = "action not allowed for this user"
	ErrNoActiveRound      GameError = "no active round"
	ErrRoundAlreadyActive GameError = "a round is already running"
	ErrNoMoreHints        GameError = "all hints are already revealed"
	ErrStoreUnavailable   GameError = "store unavailable"
	ErrInvalidInput       GameError = "invalid input"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilWordBank        GameError = "word bank cannot be nil"
	ErrNilScoreBoard      GameError = "score board cannot be nil"
	ErrNilStatsRepo       GameError = "stats repository cannot be nil"
	ErrNilEvaluator       GameError = "guess evaluator cannot be nil"
	ErrNilAuthorizer      GameError = "authorizer cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
