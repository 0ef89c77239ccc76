package postgres

import (
	"context"

	"github.com/dom/community-portal/internal/domain"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListAll returns every review newest first, with the owner's account
// email attached when the review has an owner.
func (r *reviewRepository) ListAll(ctx context.Context) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("reviews.*, users.email AS owner_email").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Order("reviews.created_at DESC, reviews.id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
