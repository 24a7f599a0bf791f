package wordbank

// WordBankError is a custom error type for word bank errors
type WordBankError string

// Error implements the error interface
func (e WordBankError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrWordsExhausted   WordBankError = "no unused words left"
	ErrInvalidWord      WordBankError = "invalid word"
	ErrStoreUnavailable WordBankError = "word store unavailable"
	ErrInvalidInput     WordBankError = "invalid input"
	ErrNilConfig        WordBankError = "config cannot be nil"
	ErrNilRepository    WordBankError = "word repository cannot be nil"
	ErrNilRandom        WordBankError = "random source cannot be nil"
)
