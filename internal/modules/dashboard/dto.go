package dashboard

import "wayfarer/internal/repository"

// Overview is the aggregated snapshot a host sees on their dashboard.
type Overview struct {
	ActiveExperiences int64                    `json:"active_experiences"`
	TotalBookings     int64                    `json:"total_bookings"`
	PendingBookings   int64                    `json:"pending_bookings"`
	ConfirmedBookings int64                    `json:"confirmed_bookings"`
	CompletedBookings int64                    `json:"completed_bookings"`
	TotalRevenue      float64                  `json:"total_revenue"`
	TotalReviews      int64                    `json:"total_reviews"`
	AverageRating     float64                  `json:"average_rating"`
	RecentBookings    []repository.HostBooking `json:"recent_bookings"`
	MonthlyRevenue    []MonthRevenue           `json:"monthly_revenue"`
}

// MonthRevenue is one point of the trailing revenue trend. Months without
// revenue-bearing bookings are simply absent.
type MonthRevenue struct {
	Month   string  `json:"month"` // "2006-01"
	Revenue float64 `json:"revenue"`
}

// ExperienceStatusCounts buckets a host's experiences by status.
type ExperienceStatusCounts struct {
	Active        int64 `json:"active"`
	Pending       int64 `json:"pending"`
	Draft         int64 `json:"draft"`
	Rejected      int64 `json:"rejected"`
	Paused        int64 `json:"paused"`
	Total         int64 `json:"total"`
	TotalViews    int64 `json:"total_views"` // view tracking does not exist yet
	TotalBookings int64 `json:"total_bookings"`
}
