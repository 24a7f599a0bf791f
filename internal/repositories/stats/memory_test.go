package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	require.NoError(t, repo.IncrementGuesses(ctx, &IncrementGuessesInput{SessionID: "chan-1", Date: "2024-05-01", UserID: "u1"}))
	require.NoError(t, repo.IncrementGuesses(ctx, &IncrementGuessesInput{SessionID: "chan-1", Date: "2024-05-01", UserID: "u1"}))

	output, err := repo.GetDailyStats(ctx, &GetDailyStatsInput{SessionID: "chan-1", Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"u1": 2}, output.Stats.Counts)

	require.NoError(t, repo.ClearDailyStats(ctx, &ClearDailyStatsInput{SessionID: "chan-1", Date: "2024-05-01"}))

	output, err = repo.GetDailyStats(ctx, &GetDailyStatsInput{SessionID: "chan-1", Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Stats.Total())
}
