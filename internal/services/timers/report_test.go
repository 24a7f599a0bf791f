package timers

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/crocodile/internal/common/clock/mocks"
	"github.com/KirkDiggler/crocodile/internal/models"
	"github.com/KirkDiggler/crocodile/internal/repositories/stats"
	statsMocks "github.com/KirkDiggler/crocodile/internal/repositories/stats/mocks"
	"github.com/KirkDiggler/crocodile/internal/services/timers/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DailyReporterTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockStats    *statsMocks.MockRepository
	mockNotifier *mocks.MockNotifier
	mockClock    *clockMocks.MockClock
	reporter     *DailyReporter
	ctx          context.Context

	testSessionID string
	testLocation  *time.Location
}

func (s *DailyReporterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStats = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testSessionID = "home-channel"
	s.testLocation = time.FixedZone("UTC+3", 3*60*60)

	reporter, err := NewDailyReporter(&DailyReportConfig{
		SessionID: s.testSessionID,
		At:        "23:55",
		Location:  s.testLocation,
		StatsRepo: s.mockStats,
		Notifier:  s.mockNotifier,
		Clock:     s.mockClock,
	})
	s.Require().NoError(err)
	s.reporter = reporter
}

func (s *DailyReporterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDailyReporterTestSuite(t *testing.T) {
	suite.Run(t, new(DailyReporterTestSuite))
}

func (s *DailyReporterTestSuite) TestParseReportTime() {
	hour, minute, err := ParseReportTime("07:30")
	s.Require().NoError(err)
	s.Equal(7, hour)
	s.Equal(30, minute)

	for _, bad := range []string{"", "7", "25:00", "12:60", "noon"} {
		_, _, err := ParseReportTime(bad)
		s.ErrorIs(err, ErrInvalidReportTime, bad)
	}
}

func (s *DailyReporterTestSuite) TestNextRun() {
	testCases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2025, 4, 19, 12, 0, 0, 0, s.testLocation),
			want: time.Date(2025, 4, 19, 23, 55, 0, 0, s.testLocation),
		},
		{
			name: "exactly at report time rolls over",
			now:  time.Date(2025, 4, 19, 23, 55, 0, 0, s.testLocation),
			want: time.Date(2025, 4, 20, 23, 55, 0, 0, s.testLocation),
		},
		{
			name: "now given in another zone",
			now:  time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC),
			want: time.Date(2025, 4, 20, 23, 55, 0, 0, s.testLocation),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.want.Equal(s.reporter.NextRun(tc.now)), "got %v", s.reporter.NextRun(tc.now))
		})
	}
}

func (s *DailyReporterTestSuite) TestReportSendsThenClears() {
	at := time.Date(2025, 4, 19, 23, 55, 0, 0, s.testLocation)
	daily := &models.DailyStats{
		SessionID: s.testSessionID,
		Date:      "2025-04-19",
		Counts:    map[string]int{"u1": 3, "u2": 1},
	}

	gomock.InOrder(
		s.mockStats.EXPECT().
			GetDailyStats(gomock.Any(), &stats.GetDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-19"}).
			Return(&stats.GetDailyStatsOutput{Stats: daily}, nil),
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), daily).Return(nil),
		s.mockStats.EXPECT().
			ClearDailyStats(gomock.Any(), &stats.ClearDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-19"}).
			Return(nil),
	)

	s.NoError(s.reporter.Report(s.ctx, at))
}

func (s *DailyReporterTestSuite) TestFailedDeliveryKeepsBucket() {
	first := time.Date(2025, 4, 19, 23, 55, 0, 0, s.testLocation)
	second := first.AddDate(0, 0, 1)
	missed := &models.DailyStats{SessionID: s.testSessionID, Date: "2025-04-19", Counts: map[string]int{"u1": 1}}
	today := &models.DailyStats{SessionID: s.testSessionID, Date: "2025-04-20", Counts: map[string]int{"u2": 2}}

	gomock.InOrder(
		s.mockStats.EXPECT().
			GetDailyStats(gomock.Any(), &stats.GetDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-19"}).
			Return(&stats.GetDailyStatsOutput{Stats: missed}, nil),
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), missed).Return(errors.New("dm closed")),

		// next tick resends the missed day before today's
		s.mockStats.EXPECT().
			GetDailyStats(gomock.Any(), &stats.GetDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-19"}).
			Return(&stats.GetDailyStatsOutput{Stats: missed}, nil),
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), missed).Return(nil),
		s.mockStats.EXPECT().
			ClearDailyStats(gomock.Any(), &stats.ClearDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-19"}).
			Return(nil),
		s.mockStats.EXPECT().
			GetDailyStats(gomock.Any(), &stats.GetDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-20"}).
			Return(&stats.GetDailyStatsOutput{Stats: today}, nil),
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), today).Return(nil),
		s.mockStats.EXPECT().
			ClearDailyStats(gomock.Any(), &stats.ClearDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-20"}).
			Return(nil),
	)

	s.Error(s.reporter.Report(s.ctx, first))
	s.NoError(s.reporter.Report(s.ctx, second))
	s.Empty(s.reporter.pending)
}

func (s *DailyReporterTestSuite) TestFailedDeliveryDoesNotBlockToday() {
	first := time.Date(2025, 4, 19, 23, 55, 0, 0, s.testLocation)
	second := first.AddDate(0, 0, 1)

	s.mockStats.EXPECT().
		GetDailyStats(gomock.Any(), gomock.Any()).
		Return(&stats.GetDailyStatsOutput{Stats: &models.DailyStats{Counts: map[string]int{}}}, nil).
		Times(3)
	gomock.InOrder(
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), gomock.Any()).Return(errors.New("dm closed")),
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), gomock.Any()).Return(errors.New("dm closed")),
		s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), gomock.Any()).Return(nil),
	)
	s.mockStats.EXPECT().
		ClearDailyStats(gomock.Any(), &stats.ClearDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-20"}).
		Return(nil)

	s.Error(s.reporter.Report(s.ctx, first))
	s.Error(s.reporter.Report(s.ctx, second))
	s.Equal([]string{"2025-04-19"}, s.reporter.pending)
}

func (s *DailyReporterTestSuite) TestPendingReportsAreBounded() {
	start := time.Date(2025, 4, 19, 23, 55, 0, 0, s.testLocation)

	s.mockStats.EXPECT().
		GetDailyStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down")).
		AnyTimes()

	for day := 0; day < maxPendingReports+2; day++ {
		s.Error(s.reporter.Report(s.ctx, start.AddDate(0, 0, day)))
	}

	s.Len(s.reporter.pending, maxPendingReports)
	s.Equal("2025-04-23", s.reporter.pending[len(s.reporter.pending)-1])
}

func (s *DailyReporterTestSuite) TestReportUsesLocalDate() {
	// 22:00 UTC is already the next day in UTC+3
	at := time.Date(2025, 4, 19, 22, 0, 0, 0, time.UTC)

	s.mockStats.EXPECT().
		GetDailyStats(gomock.Any(), &stats.GetDailyStatsInput{SessionID: s.testSessionID, Date: "2025-04-20"}).
		Return(&stats.GetDailyStatsOutput{Stats: &models.DailyStats{Counts: map[string]int{}}}, nil)
	s.mockNotifier.EXPECT().SendDailyReport(gomock.Any(), gomock.Any()).Return(nil)
	s.mockStats.EXPECT().ClearDailyStats(gomock.Any(), gomock.Any()).Return(nil)

	s.NoError(s.reporter.Report(s.ctx, at))
}

func (s *DailyReporterTestSuite) TestRunStopsOnCancel() {
	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.NoError(s.reporter.Run(ctx))
}
