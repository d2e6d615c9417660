package dashboard

import (
	"context"
	"testing"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingStats struct {
	mock.Mock
}

func (m *MockBookingStats) CountsByHost(ctx context.Context, hostID int64) (repository.BookingStatusCounts, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(repository.BookingStatusCounts), args.Error(1)
}

func (m *MockBookingStats) RevenueByHost(ctx context.Context, hostID int64) (float64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBookingStats) RecentByHost(ctx context.Context, hostID int64, limit int) ([]repository.HostBooking, error) {
	args := m.Called(ctx, hostID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HostBooking), args.Error(1)
}

func (m *MockBookingStats) RevenueRowsSince(ctx context.Context, hostID int64, since time.Time) ([]repository.RevenueRow, error) {
	args := m.Called(ctx, hostID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RevenueRow), args.Error(1)
}

func (m *MockBookingStats) CountByHost(ctx context.Context, hostID int64) (int64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(int64), args.Error(1)
}

type MockExperienceStats struct {
	mock.Mock
}

func (m *MockExperienceStats) CountActiveByHost(ctx context.Context, hostID int64) (int64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExperienceStats) StatusCountsByHost(ctx context.Context, hostID int64) (map[domain.ExperienceStatus]int64, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ExperienceStatus]int64), args.Error(1)
}

type MockReviewStats struct {
	mock.Mock
}

func (m *MockReviewStats) VerifiedTotalsByHost(ctx context.Context, hostID int64) (int64, int64, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) AuthorizeHost(ctx context.Context, hostID int64) (ownership.Handle, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).(ownership.Handle), args.Error(1)
}

func newServiceWithGrant(hostID int64) (*Service, *MockBookingStats, *MockExperienceStats, *MockReviewStats) {
	bookings := new(MockBookingStats)
	experiences := new(MockExperienceStats)
	reviews := new(MockReviewStats)
	gate := new(MockGate)
	gate.On("AuthorizeHost", mock.Anything, hostID).Return(ownership.Handle{HostID: hostID}, nil)
	return NewService(bookings, experiences, reviews, gate), bookings, experiences, reviews
}

func TestOverview_ComputesAllSections(t *testing.T) {
	svc, bookings, experiences, reviews := newServiceWithGrant(7)

	experiences.On("CountActiveByHost", mock.Anything, int64(7)).Return(int64(2), nil)
	bookings.On("CountsByHost", mock.Anything, int64(7)).Return(repository.BookingStatusCounts{
		Total: 3, Confirmed: 1, Completed: 1, Cancelled: 1,
	}, nil)
	bookings.On("RevenueByHost", mock.Anything, int64(7)).Return(120.0, nil)
	bookings.On("RecentByHost", mock.Anything, int64(7), 10).Return([]repository.HostBooking{
		{ID: 3}, {ID: 2}, {ID: 1},
	}, nil)
	reviews.On("VerifiedTotalsByHost", mock.Anything, int64(7)).Return(int64(2), int64(9), nil)
	bookings.On("RevenueRowsSince", mock.Anything, int64(7), mock.Anything).Return([]repository.RevenueRow{}, nil)

	out, err := svc.Overview(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.ActiveExperiences)
	assert.Equal(t, int64(3), out.TotalBookings)
	assert.Equal(t, int64(1), out.ConfirmedBookings)
	assert.Equal(t, int64(1), out.CompletedBookings)
	assert.Equal(t, 120.0, out.TotalRevenue)
	assert.Equal(t, int64(2), out.TotalReviews)
	assert.Equal(t, 4.5, out.AverageRating)
	assert.Len(t, out.RecentBookings, 3)
}

func TestOverview_NoReviewsMeansZeroAverage(t *testing.T) {
	svc, bookings, experiences, reviews := newServiceWithGrant(7)

	experiences.On("CountActiveByHost", mock.Anything, int64(7)).Return(int64(0), nil)
	bookings.On("CountsByHost", mock.Anything, int64(7)).Return(repository.BookingStatusCounts{}, nil)
	bookings.On("RevenueByHost", mock.Anything, int64(7)).Return(0.0, nil)
	bookings.On("RecentByHost", mock.Anything, int64(7), 10).Return(nil, nil)
	reviews.On("VerifiedTotalsByHost", mock.Anything, int64(7)).Return(int64(0), int64(0), nil)
	bookings.On("RevenueRowsSince", mock.Anything, int64(7), mock.Anything).Return(nil, nil)

	out, err := svc.Overview(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, out.AverageRating)
	assert.Equal(t, 0.0, out.TotalRevenue)
	assert.NotNil(t, out.RecentBookings)
	assert.Empty(t, out.RecentBookings)
}

func TestOverview_ForeignHostNotFound(t *testing.T) {
	bookings := new(MockBookingStats)
	experiences := new(MockExperienceStats)
	reviews := new(MockReviewStats)
	gate := new(MockGate)
	gate.On("AuthorizeHost", mock.Anything, int64(7)).Return(ownership.Handle{}, ownership.ErrNotFound)

	svc := NewService(bookings, experiences, reviews, gate)
	_, err := svc.Overview(context.Background(), 7)

	assert.ErrorIs(t, err, ownership.ErrNotFound)
	bookings.AssertNotCalled(t, "CountsByHost", mock.Anything, mock.Anything)
}

func TestGroupByMonth_SumsAndOrdersRecentFirst(t *testing.T) {
	mar := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	may := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

	out := groupByMonth([]repository.RevenueRow{
		{CreatedAt: mar, TotalPrice: 50},
		{CreatedAt: may, TotalPrice: 70},
		{CreatedAt: mar.AddDate(0, 0, 10), TotalPrice: 25},
	})

	assert.Equal(t, []MonthRevenue{
		{Month: "2026-05", Revenue: 70},
		{Month: "2026-03", Revenue: 75},
	}, out)
}

func TestGroupByMonth_EmptyInput(t *testing.T) {
	assert.Empty(t, groupByMonth(nil))
}

func TestTrendCutoff_SpansSixCalendarMonths(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	cutoff := trendCutoff(now)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cutoff)
}

func TestAverageRating_Rounding(t *testing.T) {
	assert.Equal(t, 0.0, averageRating(0, 0))
	assert.Equal(t, 4.5, averageRating(2, 9))
	assert.Equal(t, 4.3, averageRating(3, 13))
	assert.Equal(t, 5.0, averageRating(1, 5))
}

func TestExperienceOverview_Buckets(t *testing.T) {
	svc, bookings, experiences, _ := newServiceWithGrant(7)

	experiences.On("StatusCountsByHost", mock.Anything, int64(7)).Return(map[domain.ExperienceStatus]int64{
		domain.ExperiencePublished:     4,
		domain.ExperiencePendingReview: 1,
		domain.ExperienceDraft:         2,
		domain.ExperiencePaused:        1,
	}, nil)
	bookings.On("CountByHost", mock.Anything, int64(7)).Return(int64(17), nil)

	out, err := svc.ExperienceOverview(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.Active)
	assert.Equal(t, int64(1), out.Pending)
	assert.Equal(t, int64(2), out.Draft)
	assert.Equal(t, int64(0), out.Rejected)
	assert.Equal(t, int64(1), out.Paused)
	assert.Equal(t, int64(8), out.Total)
	assert.Equal(t, int64(0), out.TotalViews)
	assert.Equal(t, int64(17), out.TotalBookings)
}
