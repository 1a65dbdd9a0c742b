package service

import (
	"context"

	"github.com/campwright/campwright/models"
)

// ReviewRepository is the persistence surface for reviews. GetByID
// returns (nil, nil) when no record exists.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Delete(ctx context.Context, id uint) error
	DeleteByCampground(ctx context.Context, campgroundID uint) error
}

// ReviewService owns reviews nested under a campground. Any signed-in
// user may review; only the review's own author may delete it, and the
// campground's author gets no special right over reviews they did not
// write.
type ReviewService struct {
	repo        ReviewRepository
	campgrounds CampgroundRepository
}

func NewReviewService(repo ReviewRepository, campgrounds CampgroundRepository) *ReviewService {
	return &ReviewService{
		repo:        repo,
		campgrounds: campgrounds,
	}
}

func (s *ReviewService) Create(ctx context.Context, principal, campgroundID uint, form ReviewForm) (*models.Review, error) {
	cg, err := s.campgrounds.GetByID(ctx, campgroundID)
	if err != nil {
		return nil, persistErr(err)
	}
	if cg == nil {
		return nil, ErrCampgroundNotFound
	}
	if err := Authorize(principal, ActionCreate, 0); err != nil {
		return nil, err
	}
	if err := ValidateReview(form); err != nil {
		return nil, err
	}

	review := &models.Review{
		CampgroundID: cg.ID,
		AuthorID:     principal,
		Rating:       form.Rating,
		Body:         form.Body,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, persistErr(err)
	}
	return review, nil
}

// Delete removes the review from its campground. A review id that does
// not belong to the named campground is treated as not found rather
// than silently succeeding.
func (s *ReviewService) Delete(ctx context.Context, principal, campgroundID, reviewID uint) error {
	cg, err := s.campgrounds.GetByID(ctx, campgroundID)
	if err != nil {
		return persistErr(err)
	}
	if cg == nil {
		return ErrCampgroundNotFound
	}
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return persistErr(err)
	}
	if review == nil || review.CampgroundID != cg.ID {
		return ErrReviewNotFound
	}
	if err := Authorize(principal, ActionDelete, review.AuthorID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, review.ID); err != nil {
		return persistErr(err)
	}
	return nil
}
