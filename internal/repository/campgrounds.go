package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campwright/campwright/models"
)

// CampgroundRepo is the gorm-backed campground store.
type CampgroundRepo struct {
	db *gorm.DB
}

func NewCampgroundRepo(db *gorm.DB) *CampgroundRepo {
	return &CampgroundRepo{db: db}
}

func (r *CampgroundRepo) Create(ctx context.Context, cg *models.Campground) error {
	return r.db.WithContext(ctx).Create(cg).Error
}

// GetByID loads the campground with its author, ordered images and
// reviews (with their authors). Returns (nil, nil) when absent.
func (r *CampgroundRepo) GetByID(ctx context.Context, id uint) (*models.Campground, error) {
	var cg models.Campground
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.position ASC, images.id ASC")
		}).
		Preload("Reviews.Author").
		First(&cg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cg, nil
}

func (r *CampgroundRepo) List(ctx context.Context) ([]models.Campground, error) {
	var cgs []models.Campground
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.position ASC, images.id ASC")
		}).
		Order("campgrounds.id ASC").
		Find(&cgs).Error
	if err != nil {
		return nil, err
	}
	return cgs, nil
}

// Update saves the editable scalar fields only; associations are
// managed through AddImages/RemoveImages.
func (r *CampgroundRepo) Update(ctx context.Context, cg *models.Campground) error {
	return r.db.WithContext(ctx).Model(cg).
		Select("title", "price", "location", "description").
		Updates(map[string]any{
			"title":       cg.Title,
			"price":       cg.Price,
			"location":    cg.Location,
			"description": cg.Description,
		}).Error
}

func (r *CampgroundRepo) AddImages(ctx context.Context, campgroundID uint, imgs []models.Image) error {
	if len(imgs) == 0 {
		return nil
	}
	for i := range imgs {
		imgs[i].CampgroundID = campgroundID
	}
	return r.db.WithContext(ctx).Create(&imgs).Error
}

func (r *CampgroundRepo) RemoveImages(ctx context.Context, campgroundID uint, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("campground_id = ? AND storage_key IN ?", campgroundID, keys).
		Delete(&models.Image{}).Error
}

// Delete removes the record and its image rows. Review rows are the
// review repository's concern and are deleted before this is called.
func (r *CampgroundRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campground_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Campground{}, id).Error
	})
}
