package wordbank

import (
	"context"
	"errors"
	"testing"

	randomMocks "github.com/KirkDiggler/crocodile/internal/common/random/mocks"
	"github.com/KirkDiggler/crocodile/internal/repositories/words"
	wordsMocks "github.com/KirkDiggler/crocodile/internal/repositories/words/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WordBankTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRepo   *wordsMocks.MockRepository
	mockRandom *randomMocks.MockSource
	bank       Service
	ctx        context.Context

	testSessionID string
}

func (s *WordBankTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = wordsMocks.NewMockRepository(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()
	s.testSessionID = "test-channel-id"

	bank, err := New(&Config{
		Repo:   s.mockRepo,
		Random: s.mockRandom,
	})
	s.Require().NoError(err)
	s.bank = bank
}

func (s *WordBankTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWordBankTestSuite(t *testing.T) {
	suite.Run(t, new(WordBankTestSuite))
}

func (s *WordBankTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Random: s.mockRandom})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Repo: s.mockRepo})
	s.ErrorIs(err, ErrNilRandom)
}

func (s *WordBankTestSuite) TestLoadPoolReturnsStoredWords() {
	s.mockRepo.EXPECT().
		GetPool(s.ctx, &words.GetPoolInput{SessionID: s.testSessionID}).
		Return(&words.GetPoolOutput{Words: []string{"apple", "pear"}}, nil)

	output, err := s.bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal([]string{"apple", "pear"}, output.Words)
	s.False(output.Fallback)
}

func (s *WordBankTestSuite) TestLoadPoolFallsBackOnReadFailure() {
	s.mockRepo.EXPECT().
		GetPool(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	output, err := s.bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(output.Fallback)
	s.Equal(DefaultFallbackWords, output.Words)
}

func (s *WordBankTestSuite) newSeededBank() Service {
	bank, err := New(&Config{
		Repo:      s.mockRepo,
		Random:    s.mockRandom,
		SeedWords: []string{"крокодил", "машина"},
	})
	s.Require().NoError(err)
	return bank
}

func (s *WordBankTestSuite) TestLoadPoolSeedsOnce() {
	bank := s.newSeededBank()

	gomock.InOrder(
		s.mockRepo.EXPECT().SeedPool(s.ctx, &words.SeedPoolInput{
			SessionID: s.testSessionID,
			Words:     []string{"крокодил", "машина"},
		}).Return(&words.SeedPoolOutput{Seeded: 2}, nil),
		s.mockRepo.EXPECT().GetPool(s.ctx, gomock.Any()).
			Return(&words.GetPoolOutput{Words: []string{"крокодил", "машина"}}, nil).
			Times(2),
	)

	output, err := bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.False(output.Fallback)
	s.Equal([]string{"крокодил", "машина"}, output.Words)

	// Later loads skip the seed step
	_, err = bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
}

func (s *WordBankTestSuite) TestLoadPoolSeedFailureDealsSeedWords() {
	bank := s.newSeededBank()

	s.mockRepo.EXPECT().SeedPool(s.ctx, gomock.Any()).Return(nil, errors.New("readonly replica"))
	s.mockRepo.EXPECT().GetPool(s.ctx, gomock.Any()).Return(&words.GetPoolOutput{}, nil)

	output, err := bank.LoadPool(s.ctx, &LoadPoolInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(output.Fallback)
	s.Equal([]string{"крокодил", "машина"}, output.Words)
}

func (s *WordBankTestSuite) TestAddWordSeedsBeforeAppending() {
	bank := s.newSeededBank()

	gomock.InOrder(
		s.mockRepo.EXPECT().SeedPool(s.ctx, gomock.Any()).Return(&words.SeedPoolOutput{Seeded: 2}, nil),
		s.mockRepo.EXPECT().GetPool(s.ctx, gomock.Any()).
			Return(&words.GetPoolOutput{Words: []string{"крокодил", "машина"}}, nil),
		s.mockRepo.EXPECT().
			AppendWord(s.ctx, &words.AppendWordInput{SessionID: s.testSessionID, Word: "жираф"}).
			Return(nil),
	)

	_, err := bank.AddWord(s.ctx, &AddWordInput{SessionID: s.testSessionID, Word: "жираф"})
	s.Require().NoError(err)
}

func (s *WordBankTestSuite) TestDrawUnusedSkipsUsedWords() {
	s.mockRepo.EXPECT().
		GetUsedWords(s.ctx, gomock.Any()).
		Return(&words.GetUsedWordsOutput{Words: []string{"apple"}}, nil)
	s.mockRandom.EXPECT().Intn(2).Return(1)
	s.mockRepo.EXPECT().
		MarkUsed(s.ctx, &words.MarkUsedInput{SessionID: s.testSessionID, Word: "plum"}).
		Return(&words.MarkUsedOutput{Added: true}, nil)

	output, err := s.bank.DrawUnused(s.ctx, &DrawUnusedInput{
		SessionID: s.testSessionID,
		Pool:      []string{"apple", "pear", "Plum", "PEAR"},
	})
	s.Require().NoError(err)
	s.Equal("Plum", output.Word.Text)
	s.Equal("plum", output.Word.Normalized)
	s.Equal(1, output.Remaining)
}

func (s *WordBankTestSuite) TestDrawUnusedRetriesLostRace() {
	s.mockRepo.EXPECT().
		GetUsedWords(s.ctx, gomock.Any()).
		Return(&words.GetUsedWordsOutput{}, nil)

	gomock.InOrder(
		s.mockRandom.EXPECT().Intn(2).Return(0),
		s.mockRepo.EXPECT().
			MarkUsed(s.ctx, &words.MarkUsedInput{SessionID: s.testSessionID, Word: "apple"}).
			Return(&words.MarkUsedOutput{Added: false}, nil),
		s.mockRandom.EXPECT().Intn(1).Return(0),
		s.mockRepo.EXPECT().
			MarkUsed(s.ctx, &words.MarkUsedInput{SessionID: s.testSessionID, Word: "pear"}).
			Return(&words.MarkUsedOutput{Added: true}, nil),
	)

	output, err := s.bank.DrawUnused(s.ctx, &DrawUnusedInput{
		SessionID: s.testSessionID,
		Pool:      []string{"apple", "pear"},
	})
	s.Require().NoError(err)
	s.Equal("pear", output.Word.Normalized)
}

func (s *WordBankTestSuite) TestDrawUnusedExhausted() {
	s.mockRepo.EXPECT().
		GetUsedWords(s.ctx, gomock.Any()).
		Return(&words.GetUsedWordsOutput{Words: []string{"apple", "pear"}}, nil)

	_, err := s.bank.DrawUnused(s.ctx, &DrawUnusedInput{
		SessionID: s.testSessionID,
		Pool:      []string{"apple", "pear"},
	})
	s.ErrorIs(err, ErrWordsExhausted)
}

func (s *WordBankTestSuite) TestDrawUnusedStoreFailure() {
	s.mockRepo.EXPECT().
		GetUsedWords(s.ctx, gomock.Any()).
		Return(nil, errors.New("timeout"))

	_, err := s.bank.DrawUnused(s.ctx, &DrawUnusedInput{
		SessionID: s.testSessionID,
		Pool:      []string{"apple"},
	})
	s.ErrorIs(err, ErrStoreUnavailable)
}

func (s *WordBankTestSuite) TestAddWord() {
	s.mockRepo.EXPECT().
		GetPool(s.ctx, gomock.Any()).
		Return(&words.GetPoolOutput{Words: []string{"лампа"}}, nil)
	s.mockRepo.EXPECT().
		AppendWord(s.ctx, &words.AppendWordInput{SessionID: s.testSessionID, Word: "ёжик"}).
		Return(nil)

	output, err := s.bank.AddWord(s.ctx, &AddWordInput{SessionID: s.testSessionID, Word: "  Ёжик "})
	s.Require().NoError(err)
	s.Equal("ёжик", output.Word.Text)
	s.Equal("ежик", output.Word.Normalized)
}

func (s *WordBankTestSuite) TestAddWordRejectsInvalid() {
	testCases := []struct {
		name string
		word string
	}{
		{name: "empty", word: "   "},
		{name: "too short", word: "ёж"},
		{name: "digits", word: "abc1"},
		{name: "two words", word: "big cat"},
		{name: "punctuation", word: "кот!"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.bank.AddWord(s.ctx, &AddWordInput{SessionID: s.testSessionID, Word: tc.word})
			s.ErrorIs(err, ErrInvalidWord)
		})
	}
}

func (s *WordBankTestSuite) TestAddWordRejectsDuplicate() {
	s.mockRepo.EXPECT().
		GetPool(s.ctx, gomock.Any()).
		Return(&words.GetPoolOutput{Words: []string{"ежик"}}, nil)

	_, err := s.bank.AddWord(s.ctx, &AddWordInput{SessionID: s.testSessionID, Word: "ЁЖИК"})
	s.ErrorIs(err, ErrInvalidWord)
}

func (s *WordBankTestSuite) TestClearUsed() {
	s.mockRepo.EXPECT().
		ClearUsedWords(s.ctx, &words.ClearUsedWordsInput{SessionID: s.testSessionID}).
		Return(nil)

	s.NoError(s.bank.ClearUsed(s.ctx, &ClearUsedInput{SessionID: s.testSessionID}))
}
