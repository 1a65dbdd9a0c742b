package service

import (
	"context"

	"github.com/campwright/campwright/internal/storage"
	"github.com/campwright/campwright/models"
)

type mockCampgroundRepo struct {
	createFunc       func(ctx context.Context, cg *models.Campground) error
	getByIDFunc      func(ctx context.Context, id uint) (*models.Campground, error)
	listFunc         func(ctx context.Context) ([]models.Campground, error)
	updateFunc       func(ctx context.Context, cg *models.Campground) error
	addImagesFunc    func(ctx context.Context, campgroundID uint, imgs []models.Image) error
	removeImagesFunc func(ctx context.Context, campgroundID uint, keys []string) error
	deleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockCampgroundRepo) Create(ctx context.Context, cg *models.Campground) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, cg)
	}
	return nil
}

func (m *mockCampgroundRepo) GetByID(ctx context.Context, id uint) (*models.Campground, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCampgroundRepo) List(ctx context.Context) ([]models.Campground, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockCampgroundRepo) Update(ctx context.Context, cg *models.Campground) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, cg)
	}
	return nil
}

func (m *mockCampgroundRepo) AddImages(ctx context.Context, campgroundID uint, imgs []models.Image) error {
	if m.addImagesFunc != nil {
		return m.addImagesFunc(ctx, campgroundID, imgs)
	}
	return nil
}

func (m *mockCampgroundRepo) RemoveImages(ctx context.Context, campgroundID uint, keys []string) error {
	if m.removeImagesFunc != nil {
		return m.removeImagesFunc(ctx, campgroundID, keys)
	}
	return nil
}

func (m *mockCampgroundRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockReviewRepo struct {
	createFunc             func(ctx context.Context, review *models.Review) error
	getByIDFunc            func(ctx context.Context, id uint) (*models.Review, error)
	deleteFunc             func(ctx context.Context, id uint) error
	deleteByCampgroundFunc func(ctx context.Context, campgroundID uint) error
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepo) DeleteByCampground(ctx context.Context, campgroundID uint) error {
	if m.deleteByCampgroundFunc != nil {
		return m.deleteByCampgroundFunc(ctx, campgroundID)
	}
	return nil
}

type mockStore struct {
	uploadFunc func(ctx context.Context, filename, contentType string, data []byte) (storage.Attachment, error)
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockStore) Upload(ctx context.Context, filename, contentType string, data []byte) (storage.Attachment, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, filename, contentType, data)
	}
	return storage.Attachment{
		URL: "https://cdn.example.com/" + filename,
		Key: "campgrounds/originals/" + filename,
	}, nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}
