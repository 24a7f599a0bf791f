// Package uuid generates round identifiers.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/crocodile/internal/common/uuid UUID

// UUID produces unique identifiers
type UUID interface {
	NewUUID() string
}

// TimeOrdered generates version 7 UUIDs, which sort by creation time
type TimeOrdered struct{}

func New() *TimeOrdered {
	return &TimeOrdered{}
}

// NewUUID returns a new identifier, a random v4 UUID if v7 generation fails
func (g *TimeOrdered) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
