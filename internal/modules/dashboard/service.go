package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/repository"
)

const (
	recentBookingsLimit = 10
	trendMonths         = 6
)

type Service struct {
	bookings    BookingStats
	experiences ExperienceStats
	reviews     ReviewStats
	gate        OwnershipGate
}

func NewService(bookings BookingStats, experiences ExperienceStats, reviews ReviewStats, gate OwnershipGate) *Service {
	return &Service{
		bookings:    bookings,
		experiences: experiences,
		reviews:     reviews,
		gate:        gate,
	}
}

// Overview computes the host's dashboard snapshot. Everything is read fresh
// per call; there is no caching layer.
func (s *Service) Overview(ctx context.Context, hostID int64) (*Overview, error) {
	if _, err := s.gate.AuthorizeHost(ctx, hostID); err != nil {
		return nil, err
	}

	active, err := s.experiences.CountActiveByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	counts, err := s.bookings.CountsByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.bookings.RevenueByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	recent, err := s.bookings.RecentByHost(ctx, hostID, recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []repository.HostBooking{}
	}

	reviewCount, ratingSum, err := s.reviews.VerifiedTotalsByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	since := trendCutoff(time.Now())
	rows, err := s.bookings.RevenueRowsSince(ctx, hostID, since)
	if err != nil {
		return nil, err
	}

	return &Overview{
		ActiveExperiences: active,
		TotalBookings:     counts.Total,
		PendingBookings:   counts.Pending,
		ConfirmedBookings: counts.Confirmed,
		CompletedBookings: counts.Completed,
		TotalRevenue:      revenue,
		TotalReviews:      reviewCount,
		AverageRating:     averageRating(reviewCount, ratingSum),
		RecentBookings:    recent,
		MonthlyRevenue:    groupByMonth(rows),
	}, nil
}

// ExperienceOverview buckets the host's experiences by status and counts
// bookings across all of them.
func (s *Service) ExperienceOverview(ctx context.Context, hostID int64) (*ExperienceStatusCounts, error) {
	if _, err := s.gate.AuthorizeHost(ctx, hostID); err != nil {
		return nil, err
	}

	byStatus, err := s.experiences.StatusCountsByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	totalBookings, err := s.bookings.CountByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	out := &ExperienceStatusCounts{
		Active:        byStatus[domain.ExperiencePublished],
		Pending:       byStatus[domain.ExperiencePendingReview],
		Draft:         byStatus[domain.ExperienceDraft],
		Rejected:      byStatus[domain.ExperienceRejected],
		Paused:        byStatus[domain.ExperiencePaused],
		TotalBookings: totalBookings,
	}
	for _, cnt := range byStatus {
		out.Total += cnt
	}
	return out, nil
}

// trendCutoff is the first day of the month five months before now, so the
// trend spans six calendar months including the current one.
func trendCutoff(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, -(trendMonths - 1), 0)
}

func averageRating(count, sum int64) float64 {
	if count == 0 {
		return 0
	}
	avg := float64(sum) / float64(count)
	return math.Round(avg*10) / 10
}

// groupByMonth sums revenue per calendar month, most recent first.
func groupByMonth(rows []repository.RevenueRow) []MonthRevenue {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[r.CreatedAt.Format("2006-01")] += r.TotalPrice
	}

	out := make([]MonthRevenue, 0, len(sums))
	for month, revenue := range sums {
		out = append(out, MonthRevenue{Month: month, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}
