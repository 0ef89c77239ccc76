package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/repository"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

type ReviewInput struct {
	Name    string
	Rating  string
	Comment string
}

// Post inserts a new review for ownerID (nil for anonymous). Name and
// rating are required and the rating must be a whole number.
func (s *ReviewService) Post(ctx context.Context, ownerID *uint, input ReviewInput) (*domain.Review, error) {
	name := strings.TrimSpace(input.Name)
	rawRating := strings.TrimSpace(input.Rating)
	comment := strings.TrimSpace(input.Comment)

	if name == "" || rawRating == "" {
		return nil, domain.NewValidationError("Please provide your name and a rating.")
	}

	rating, err := strconv.Atoi(rawRating)
	if err != nil {
		return nil, domain.NewValidationError("Rating must be a whole number.")
	}

	review := &domain.Review{
		UserID:  ownerID,
		Name:    name,
		Rating:  rating,
		Comment: comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListAll returns the public review feed, newest first.
func (s *ReviewService) ListAll(ctx context.Context) ([]*domain.Review, error) {
	return s.reviewRepo.ListAll(ctx)
}
