// Package guess decides whether chat text names the secret word.
package guess

import (
	"strings"

	"github.com/KirkDiggler/crocodile/internal/textnorm"
)

// MatchPolicy selects how a guess is compared with the answer
type MatchPolicy string

const (
	// PolicyContains accepts a guess whose normalized form contains the answer
	PolicyContains MatchPolicy = "contains"

	// PolicyExact accepts only a guess equal to the answer
	PolicyExact MatchPolicy = "exact"
)

const (
	DefaultLeakMinTokenLength = 4
	DefaultLeakPrefixLength   = 4
)

// EvaluatorError is a custom error type for evaluator errors
type EvaluatorError string

// Error implements the error interface
func (e EvaluatorError) Error() string {
	return string(e)
}

const (
	ErrUnknownPolicy EvaluatorError = "unknown match policy"
)

// Config holds configuration for the evaluator
type Config struct {
	// Policy defaults to PolicyContains
	Policy MatchPolicy

	// LeakMinTokenLength exempts shorter tokens of the leader's messages
	LeakMinTokenLength int

	// LeakPrefixLength is the shared prefix that counts as the same root
	LeakPrefixLength int
}

// Evaluator applies the match policy and the leak heuristic
type Evaluator struct {
	policy         MatchPolicy
	minTokenLength int
	prefixLength   int
}

// New creates an evaluator, filling defaults for zero values
func New(cfg *Config) (*Evaluator, error) {
	e := &Evaluator{
		policy:         PolicyContains,
		minTokenLength: DefaultLeakMinTokenLength,
		prefixLength:   DefaultLeakPrefixLength,
	}

	if cfg == nil {
		return e, nil
	}

	switch cfg.Policy {
	case "":
	case PolicyContains, PolicyExact:
		e.policy = cfg.Policy
	default:
		return nil, ErrUnknownPolicy
	}

	if cfg.LeakMinTokenLength > 0 {
		e.minTokenLength = cfg.LeakMinTokenLength
	}
	if cfg.LeakPrefixLength > 0 {
		e.prefixLength = cfg.LeakPrefixLength
	}

	return e, nil
}

// Policy returns the active match policy
func (e *Evaluator) Policy() MatchPolicy {
	return e.policy
}

// IsCorrect reports whether the guess names the answer. Both arguments are raw text.
func (e *Evaluator) IsCorrect(guess, answer string) bool {
	g := textnorm.Normalize(guess)
	a := textnorm.Normalize(answer)
	if g == "" || a == "" {
		return false
	}

	if e.policy == PolicyExact {
		return g == a
	}
	return strings.Contains(g, a)
}

// DetectLeak returns the first token of the leader's message that gives the answer away
func (e *Evaluator) DetectLeak(message, answer string) (string, bool) {
	a := textnorm.Normalize(answer)
	if a == "" {
		return "", false
	}

	for _, token := range textnorm.Tokens(message) {
		if textnorm.Length(token) < e.minTokenLength {
			continue
		}

		if token == a || strings.Contains(token, a) || strings.Contains(a, token) {
			return token, true
		}

		if commonPrefix(token, a) >= e.prefixLength {
			return token, true
		}
	}

	return "", false
}

// commonPrefix counts the leading runes shared by a and b
func commonPrefix(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}
