package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/pkg/listquery"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	ExperienceID       int64     `gorm:"column:experience_id"`
	TravelerID         int64     `gorm:"column:traveler_id"`
	Status             string    `gorm:"column:status"`
	TotalPrice         float64   `gorm:"column:total_price"`
	Currency           string    `gorm:"column:currency"`
	Participants       int       `gorm:"column:participants"`
	BookingDate        time.Time `gorm:"column:booking_date"`
	Notes              *string   `gorm:"column:notes"`
	CancellationReason *string   `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		ExperienceID:       m.ExperienceID,
		TravelerID:         m.TravelerID,
		Status:             domain.BookingStatus(m.Status),
		TotalPrice:         m.TotalPrice,
		Currency:           m.Currency,
		Participants:       m.Participants,
		BookingDate:        m.BookingDate,
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// HostBooking is the list-row projection for the host bookings screen.
type HostBooking struct {
	ID              int64     `json:"id"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"total_price"`
	Currency        string    `json:"currency"`
	Participants    int       `json:"participants"`
	BookingDate     time.Time `json:"booking_date"`
	CreatedAt       time.Time `json:"created_at"`
	ExperienceID    int64     `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
	TravelerName    string    `json:"traveler_name"`
}

// BookingStatusCounts aggregates a host's bookings by status.
type BookingStatusCounts struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Cancelled int64
	Completed int64
}

// RevenueRow is the raw material for the monthly revenue trend.
type RevenueRow struct {
	CreatedAt  time.Time
	TotalPrice float64
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetDetail loads a booking with its experience and traveler projections.
func (r *BookingRepository) GetDetail(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Experience").
		Preload("Traveler").
		First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// ListByHost returns one page of bookings across the host's experiences plus
// the unpaged total. Deleted experiences are excluded from both.
func (r *BookingRepository) ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]HostBooking, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("bookings").
			Joins("JOIN experiences ON experiences.id = bookings.experience_id").
			Joins("JOIN users ON users.id = bookings.traveler_id").
			Where("experiences.host_id = ?", hostID).
			Where("experiences.status <> ?", string(domain.ExperienceDeleted))
	}

	var total int64
	if err := plan.ApplyConds(base()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []HostBooking
	err := plan.Apply(base()).
		Select(`bookings.id, bookings.status, bookings.total_price, bookings.currency,
			bookings.participants, bookings.booking_date, bookings.created_at,
			bookings.experience_id, experiences.title AS experience_title,
			users.name AS traveler_name`).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatus applies the lifecycle write: status, notes, fresh updated_at.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status, notes string) (*domain.Booking, error) {
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if notes != "" {
		updates["notes"] = notes
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) CountsByHost(ctx context.Context, hostID int64) (BookingStatusCounts, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	q := `
SELECT b.status AS status, COUNT(1) AS cnt
FROM bookings b
JOIN experiences e ON e.id = b.experience_id
WHERE e.host_id = ? AND e.status <> 'deleted'
GROUP BY b.status
`
	if err := r.db.WithContext(ctx).Raw(q, hostID).Scan(&rows).Error; err != nil {
		return BookingStatusCounts{}, err
	}

	var out BookingStatusCounts
	for _, row := range rows {
		out.Total += row.Cnt
		switch domain.BookingStatus(row.Status) {
		case domain.BookingPending:
			out.Pending = row.Cnt
		case domain.BookingConfirmed:
			out.Confirmed = row.Cnt
		case domain.BookingCancelled:
			out.Cancelled = row.Cnt
		case domain.BookingCompleted:
			out.Completed = row.Cnt
		}
	}
	return out, nil
}

func (r *BookingRepository) RevenueByHost(ctx context.Context, hostID int64) (float64, error) {
	var revenue float64
	q := `
SELECT COALESCE(SUM(b.total_price), 0)
FROM bookings b
JOIN experiences e ON e.id = b.experience_id
WHERE e.host_id = ? AND e.status <> 'deleted'
  AND b.status IN ('confirmed', 'completed')
`
	tx := r.db.WithContext(ctx).Raw(q, hostID).Scan(&revenue)
	return revenue, tx.Error
}

func (r *BookingRepository) RecentByHost(ctx context.Context, hostID int64, limit int) ([]HostBooking, error) {
	var rows []HostBooking
	err := r.db.WithContext(ctx).
		Table("bookings").
		Joins("JOIN experiences ON experiences.id = bookings.experience_id").
		Joins("JOIN users ON users.id = bookings.traveler_id").
		Where("experiences.host_id = ?", hostID).
		Where("experiences.status <> ?", string(domain.ExperienceDeleted)).
		Select(`bookings.id, bookings.status, bookings.total_price, bookings.currency,
			bookings.participants, bookings.booking_date, bookings.created_at,
			bookings.experience_id, experiences.title AS experience_title,
			users.name AS traveler_name`).
		Order("bookings.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RevenueRowsSince returns revenue-bearing bookings created at or after the
// cutoff; the caller groups them into calendar months.
func (r *BookingRepository) RevenueRowsSince(ctx context.Context, hostID int64, since time.Time) ([]RevenueRow, error) {
	var rows []RevenueRow
	q := `
SELECT b.created_at AS created_at, b.total_price AS total_price
FROM bookings b
JOIN experiences e ON e.id = b.experience_id
WHERE e.host_id = ? AND e.status <> 'deleted'
  AND b.status IN ('confirmed', 'completed')
  AND b.created_at >= ?
`
	err := r.db.WithContext(ctx).Raw(q, hostID, since).Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) CountByHost(ctx context.Context, hostID int64) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings b
JOIN experiences e ON e.id = b.experience_id
WHERE e.host_id = ? AND e.status <> 'deleted'
`
	tx := r.db.WithContext(ctx).Raw(q, hostID).Scan(&cnt)
	return cnt, tx.Error
}
