package scoreboard

// ScoreBoardError is a custom error type for score board errors
type ScoreBoardError string

// Error implements the error interface
func (e ScoreBoardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrStoreUnavailable ScoreBoardError = "score store unavailable"
	ErrInvalidInput     ScoreBoardError = "invalid input"
	ErrNilConfig        ScoreBoardError = "config cannot be nil"
	ErrNilRepository    ScoreBoardError = "score repository cannot be nil"
)
