package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campwright/campwright/models"
)

// ReviewRepo is the gorm-backed review store.
type ReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepo) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

// DeleteByCampground is the review half of the campground delete
// cascade.
func (r *ReviewRepo) DeleteByCampground(ctx context.Context, campgroundID uint) error {
	return r.db.WithContext(ctx).
		Where("campground_id = ?", campgroundID).
		Delete(&models.Review{}).Error
}
