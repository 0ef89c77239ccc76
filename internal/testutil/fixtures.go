package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/dom/community-portal/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     "Test User",
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin registers the user through the register form and logs
// in with the given client, so the client's jar holds a session cookie.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer, client *http.Client) *domain.User {
	t.Helper()

	resp, err := client.PostForm(ts.URL("/register"), url.Values{
		"name":     {b.name},
		"email":    {b.email},
		"password": {b.password},
	})
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	resp.Body.Close()

	resp, err = client.PostForm(ts.URL("/login"), url.Values{
		"email":    {b.email},
		"password": {b.password},
	})
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	resp.Body.Close()

	var user domain.User
	if err := ts.DB.DB.First(&user, "email = ?", b.email).Error; err != nil {
		t.Fatalf("failed to load registered user: %v", err)
	}

	return &user
}

// AppointmentBuilder creates test appointments with a builder pattern
type AppointmentBuilder struct {
	owner  *domain.User
	name   string
	email  string
	date   string
	time   string
	reason string
}

// NewAppointmentBuilder creates a new AppointmentBuilder with default values
func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		name:   "Test Patient",
		email:  "patient@example.com",
		date:   "2024-06-01",
		time:   "09:30",
		reason: "checkup",
	}
}

// WithOwner sets the owning user
func (b *AppointmentBuilder) WithOwner(owner *domain.User) *AppointmentBuilder {
	b.owner = owner
	return b
}

// WithName sets the contact name
func (b *AppointmentBuilder) WithName(name string) *AppointmentBuilder {
	b.name = name
	return b
}

// WithDate sets the requested date
func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.date = date
	return b
}

// Build creates the appointment in the database
func (b *AppointmentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Appointment {
	t.Helper()

	appointment := &domain.Appointment{
		Name:     b.name,
		Email:    b.email,
		ApptDate: b.date,
		ApptTime: b.time,
		Reason:   b.reason,
	}
	if b.owner != nil {
		appointment.UserID = &b.owner.ID
	}

	if err := db.Create(appointment).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	return appointment
}

// ReviewBuilder creates test reviews with a builder pattern
type ReviewBuilder struct {
	owner   *domain.User
	name    string
	rating  int
	comment string
}

// NewReviewBuilder creates a new ReviewBuilder with default values
func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		name:    "Test Reviewer",
		rating:  5,
		comment: "great service",
	}
}

// WithOwner sets the owning user
func (b *ReviewBuilder) WithOwner(owner *domain.User) *ReviewBuilder {
	b.owner = owner
	return b
}

// WithName sets the display name
func (b *ReviewBuilder) WithName(name string) *ReviewBuilder {
	b.name = name
	return b
}

// WithRating sets the rating
func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.rating = rating
	return b
}

// Build creates the review in the database
func (b *ReviewBuilder) Build(t *testing.T, db *gorm.DB) *domain.Review {
	t.Helper()

	review := &domain.Review{
		Name:    b.name,
		Rating:  b.rating,
		Comment: b.comment,
	}
	if b.owner != nil {
		review.UserID = &b.owner.ID
	}

	if err := db.Create(review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	return review
}
