package game

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/crocodile/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/crocodile/internal/common/uuid/mocks"
	"github.com/KirkDiggler/crocodile/internal/models"
	statsMocks "github.com/KirkDiggler/crocodile/internal/repositories/stats/mocks"
	"github.com/KirkDiggler/crocodile/internal/services/game/mocks"
	"github.com/KirkDiggler/crocodile/internal/services/guess"
	"github.com/KirkDiggler/crocodile/internal/services/scoreboard"
	scoreboardMocks "github.com/KirkDiggler/crocodile/internal/services/scoreboard/mocks"
	"github.com/KirkDiggler/crocodile/internal/services/wordbank"
	wordbankMocks "github.com/KirkDiggler/crocodile/internal/services/wordbank/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StoreFailureTestSuite covers degraded stores behind the game service
type StoreFailureTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockWordBank   *wordbankMocks.MockService
	mockScoreBoard *scoreboardMocks.MockService
	mockStatsRepo  *statsMocks.MockRepository
	mockAuthorizer *mocks.MockAuthorizer
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	game           Service
	ctx            context.Context

	testSessionID string
	testWord      *models.Word
}

func (s *StoreFailureTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockWordBank = wordbankMocks.NewMockService(s.mockCtrl)
	s.mockScoreBoard = scoreboardMocks.NewMockService(s.mockCtrl)
	s.mockStatsRepo = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockAuthorizer = mocks.NewMockAuthorizer(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testSessionID = "test-channel-id"
	s.testWord = &models.Word{Text: "лампа", Normalized: "лампа"}

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("round-id").AnyTimes()

	evaluator, err := guess.New(nil)
	s.Require().NoError(err)

	svc, err := New(&Config{
		WordBank:      s.mockWordBank,
		ScoreBoard:    s.mockScoreBoard,
		Evaluator:     evaluator,
		Authorizer:    s.mockAuthorizer,
		StatsRepo:     s.mockStatsRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.game = svc
}

func (s *StoreFailureTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStoreFailureTestSuite(t *testing.T) {
	suite.Run(t, new(StoreFailureTestSuite))
}

func (s *StoreFailureTestSuite) expectDraw(word *models.Word, err error) {
	s.mockWordBank.EXPECT().
		LoadPool(gomock.Any(), &wordbank.LoadPoolInput{SessionID: s.testSessionID}).
		Return(&wordbank.LoadPoolOutput{Words: []string{"лампа", "река"}}, nil)

	if err != nil {
		s.mockWordBank.EXPECT().DrawUnused(gomock.Any(), gomock.Any()).Return(nil, err)
		return
	}

	s.mockWordBank.EXPECT().
		DrawUnused(gomock.Any(), &wordbank.DrawUnusedInput{
			SessionID: s.testSessionID,
			Pool:      []string{"лампа", "река"},
		}).
		Return(&wordbank.DrawUnusedOutput{Word: word}, nil)
}

func (s *StoreFailureTestSuite) start() {
	s.expectDraw(s.testWord, nil)
	_, err := s.game.StartRound(s.ctx, &StartRoundInput{SessionID: s.testSessionID, UserID: "leader-id"})
	s.Require().NoError(err)
}

func (s *StoreFailureTestSuite) TestStartRoundUsedSetUnavailable() {
	s.expectDraw(nil, wordbank.ErrStoreUnavailable)

	_, err := s.game.StartRound(s.ctx, &StartRoundInput{SessionID: s.testSessionID, UserID: "leader-id"})
	s.ErrorIs(err, ErrStoreUnavailable)

	status, err := s.game.CurrentStatus(s.ctx, &CurrentStatusInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(status.Round.Status.IsIdle())
}

func (s *StoreFailureTestSuite) TestCorrectGuessSurvivesScoreFailure() {
	s.start()

	s.mockStatsRepo.EXPECT().IncrementGuesses(gomock.Any(), gomock.Any()).Return(errors.New("stats down"))
	s.mockScoreBoard.EXPECT().
		Award(gomock.Any(), &scoreboard.AwardInput{
			SessionID:   s.testSessionID,
			UserID:      "guesser-id",
			DisplayName: "Guesser",
			Delta:       1,
		}).
		Return(nil, scoreboard.ErrStoreUnavailable)
	s.expectDraw(&models.Word{Text: "река", Normalized: "река"}, nil)

	output, err := s.game.SubmitGuess(s.ctx, &SubmitGuessInput{
		SessionID:   s.testSessionID,
		UserID:      "guesser-id",
		DisplayName: "Guesser",
		Text:        "лампа",
	})
	s.Require().NoError(err)
	s.Equal(GuessOutcomeCorrect, output.Outcome)
	s.True(output.ScoreUnavailable)
	s.Equal("guesser-id", output.Round.LeaderID)
	s.Equal("река", output.Round.Word.Text)
}

func (s *StoreFailureTestSuite) TestAdvanceDrawFailureEndsRound() {
	s.start()

	s.mockStatsRepo.EXPECT().IncrementGuesses(gomock.Any(), gomock.Any()).Return(nil)
	s.mockScoreBoard.EXPECT().Award(gomock.Any(), gomock.Any()).Return(&scoreboard.AwardOutput{Previous: 0, Points: 1}, nil)
	s.expectDraw(nil, wordbank.ErrStoreUnavailable)

	output, err := s.game.SubmitGuess(s.ctx, &SubmitGuessInput{
		SessionID: s.testSessionID,
		UserID:    "guesser-id",
		Text:      "лампа",
	})
	s.Require().NoError(err)
	s.True(output.RoundEnded)
	s.False(output.PoolExhausted)
	s.True(output.Round.Status.IsIdle())
	s.Nil(output.Round.Word)
}

func (s *StoreFailureTestSuite) TestRankingUnavailable() {
	s.mockScoreBoard.EXPECT().Ranking(gomock.Any(), gomock.Any()).Return(nil, scoreboard.ErrStoreUnavailable)

	_, err := s.game.GetRanking(s.ctx, &GetRankingInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrStoreUnavailable)
}

func (s *StoreFailureTestSuite) TestAddWordInvalid() {
	s.mockAuthorizer.EXPECT().IsAdministrator(gomock.Any(), s.testSessionID, "admin-id").Return(true)
	s.mockWordBank.EXPECT().AddWord(gomock.Any(), gomock.Any()).Return(nil, wordbank.ErrInvalidWord)

	_, err := s.game.AddWord(s.ctx, &AddWordInput{SessionID: s.testSessionID, UserID: "admin-id", Word: "x"})
	s.ErrorIs(err, ErrInvalidWord)
}

func (s *StoreFailureTestSuite) TestResetAllFailureKeepsRound() {
	s.start()

	s.mockAuthorizer.EXPECT().IsAdministrator(gomock.Any(), s.testSessionID, "admin-id").Return(true)
	s.mockScoreBoard.EXPECT().
		Reset(gomock.Any(), &scoreboard.ResetInput{SessionID: s.testSessionID}).
		Return(scoreboard.ErrStoreUnavailable)

	_, err := s.game.ResetAll(s.ctx, &ResetAllInput{SessionID: s.testSessionID, UserID: "admin-id"})
	s.ErrorIs(err, ErrStoreUnavailable)

	status, err := s.game.CurrentStatus(s.ctx, &CurrentStatusInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.False(status.Round.Status.IsIdle())
	s.Equal("leader-id", status.Round.LeaderID)
	s.Equal("лампа", status.Round.Word.Text)
}
