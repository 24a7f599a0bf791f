package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/crocodile/internal/common/random"
	"github.com/KirkDiggler/crocodile/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/services/game"
	"github.com/KirkDiggler/crocodile/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotifierTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTransport *mocks.MockTransport
	mockNames     *mocks.MockNameSource
	notifier      *Notifier
	ctx           context.Context
}

func (s *NotifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransport = mocks.NewMockTransport(s.ctrl)
	s.mockNames = mocks.NewMockNameSource(s.ctrl)
	s.ctx = context.Background()

	msgs, err := messaging.NewService(&messaging.ServiceConfig{Random: random.New(&random.Config{Seed: 7})})
	s.Require().NoError(err)

	s.notifier, err = NewNotifier(&NotifierConfig{
		Transport:   s.mockTransport,
		Messaging:   msgs,
		Names:       s.mockNames,
		RecipientID: "boss",
	})
	s.Require().NoError(err)
}

func (s *NotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) TestNewNotifierValidation() {
	_, err := NewNotifier(nil)
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{Transport: s.mockTransport})
	s.Error(err)
}

func (s *NotifierTestSuite) TestSendNudgeGoesToSessionChannel() {
	s.mockTransport.EXPECT().SendChannelMessage("channel-1", gomock.Any()).Return(nil)

	s.NoError(s.notifier.SendNudge(s.ctx, "channel-1"))
}

func (s *NotifierTestSuite) TestSendNudgeFailure() {
	s.mockTransport.EXPECT().SendChannelMessage("channel-1", gomock.Any()).Return(errors.New("offline"))

	s.Error(s.notifier.SendNudge(s.ctx, "channel-1"))
}

func (s *NotifierTestSuite) TestSendDailyReportUsesKnownNames() {
	stats := &models.DailyStats{
		SessionID: "channel-1",
		Date:      "2024-03-01",
		Counts:    map[string]int{"u1": 4, "u2": 1},
	}

	s.mockNames.EXPECT().GetRanking(s.ctx, &game.GetRankingInput{SessionID: "channel-1"}).Return(&game.GetRankingOutput{
		Entries: []*models.ScoreRecord{{UserID: "u1", Points: 3, DisplayName: "Alice"}},
	}, nil)
	s.mockTransport.EXPECT().SendDirectMessage("boss", "📊 Guesses on 2024-03-01\nAlice: 4\nu2: 1\nTotal: 5").Return(nil)

	s.NoError(s.notifier.SendDailyReport(s.ctx, stats))
}

func (s *NotifierTestSuite) TestSendDailyReportWithoutNames() {
	stats := &models.DailyStats{SessionID: "channel-1", Date: "2024-03-01", Counts: map[string]int{}}

	s.mockNames.EXPECT().GetRanking(gomock.Any(), gomock.Any()).Return(nil, game.ErrStoreUnavailable)
	s.mockTransport.EXPECT().SendDirectMessage("boss", "📊 Guesses on 2024-03-01\nNo guesses today.").Return(nil)

	s.NoError(s.notifier.SendDailyReport(s.ctx, stats))
}

func (s *NotifierTestSuite) TestSendDailyReportDeliveryFailure() {
	stats := &models.DailyStats{SessionID: "channel-1", Date: "2024-03-01"}

	s.mockNames.EXPECT().GetRanking(gomock.Any(), gomock.Any()).Return(&game.GetRankingOutput{}, nil)
	s.mockTransport.EXPECT().SendDirectMessage("boss", gomock.Any()).Return(errors.New("dm closed"))

	s.Error(s.notifier.SendDailyReport(s.ctx, stats))
}

func (s *NotifierTestSuite) TestSendDailyReportRequiresRecipient() {
	notifier, err := NewNotifier(&NotifierConfig{Transport: s.mockTransport, Messaging: s.notifier.messaging})
	s.Require().NoError(err)

	s.Error(notifier.SendDailyReport(s.ctx, &models.DailyStats{Date: "2024-03-01"}))
}
