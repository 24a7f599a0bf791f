package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClockUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	before := time.Now()
	now := New(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
}

func TestSystemClockWithoutLocation(t *testing.T) {
	assert.Equal(t, time.Local, New(nil).Now().Location())
}
