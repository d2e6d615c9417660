package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"wayfarer/internal/database"
	"wayfarer/internal/domain"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("wayfarer.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Experience{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Story{},
		&domain.StoryComment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// cleanup in FK order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM story_comments")
	db.Exec("DELETE FROM stories")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM experiences")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	host := domain.User{
		Email: "amira@wayfarer.dev", Name: "Amira", Role: domain.RoleHost,
		IsVerified: true, IsActive: true,
	}
	db.Create(&host)

	travelers := make([]domain.User, 0, 4)
	for i := 1; i <= 4; i++ {
		t := domain.User{
			Email: fmt.Sprintf("traveler%d@wayfarer.dev", i),
			Name:  fmt.Sprintf("Traveler %d", i),
			Role:  domain.RoleTraveler, IsActive: true,
		}
		db.Create(&t)
		travelers = append(travelers, t)
	}

	log.Println("Creating experiences...")
	statuses := []domain.ExperienceStatus{
		domain.ExperiencePublished,
		domain.ExperiencePublished,
		domain.ExperienceDraft,
		domain.ExperiencePendingReview,
		domain.ExperiencePaused,
	}
	experiences := make([]domain.Experience, 0, len(statuses))
	for i, status := range statuses {
		e := domain.Experience{
			HostID: host.ID,
			Title:  fmt.Sprintf("Old Town Walking Tour #%d", i+1),
			Status: status, Price: 45 + float64(i)*10, Currency: "EUR",
			MinGuests: 1, MaxGuests: 8,
			City: "Lisbon", Country: "Portugal",
		}
		db.Create(&e)
		experiences = append(experiences, e)
	}

	log.Println("Creating bookings...")
	now := time.Now()
	bookingFixtures := []struct {
		status   domain.BookingStatus
		price    float64
		monthAgo int
	}{
		{domain.BookingConfirmed, 50, 0},
		{domain.BookingCompleted, 70, 1},
		{domain.BookingCancelled, 30, 1},
		{domain.BookingPending, 90, 0},
		{domain.BookingCompleted, 120, 3},
		{domain.BookingConfirmed, 60, 5},
	}
	for i, f := range bookingFixtures {
		created := now.AddDate(0, -f.monthAgo, 0)
		b := domain.Booking{
			ExperienceID: experiences[i%2].ID,
			TravelerID:   travelers[i%len(travelers)].ID,
			Status:       f.status, TotalPrice: f.price, Currency: "EUR",
			Participants: 2, BookingDate: created.AddDate(0, 0, 7),
			CreatedAt: created, UpdatedAt: created,
		}
		db.Create(&b)
	}

	log.Println("Creating reviews...")
	reviews := []domain.Review{
		{ExperienceID: experiences[0].ID, ReviewerID: travelers[0].ID, Rating: 5, Comment: "Unforgettable evening!", IsVerified: true},
		{ExperienceID: experiences[0].ID, ReviewerID: travelers[1].ID, Rating: 4, Comment: "Great guide, a bit rushed.", IsVerified: true},
		{ExperienceID: experiences[1].ID, ReviewerID: travelers[2].ID, Rating: 1, Comment: "Never showed up??", IsVerified: false},
	}
	for i := range reviews {
		db.Create(&reviews[i])
	}

	log.Println("Creating stories...")
	s := domain.Story{
		AuthorID: host.ID, Title: "Why I started hosting",
		Body: "It began with a spare weekend and a borrowed bicycle...", IsPublished: true,
	}
	db.Create(&s)

	comments := []domain.StoryComment{
		{StoryID: s.ID, UserID: travelers[0].ID, Body: "Lovely read!", IsApproved: true},
		{StoryID: s.ID, UserID: travelers[1].ID, Body: "When is the next tour?", IsApproved: false},
	}
	for i := range comments {
		db.Create(&comments[i])
	}

	log.Println("Seed complete.")
	log.Printf("Host id: %d (use JWT_SECRET to mint a token with role=host)", host.ID)
}
