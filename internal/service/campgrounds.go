package service

import (
	"context"
	"log"

	"github.com/campwright/campwright/internal/storage"
	"github.com/campwright/campwright/models"
)

// CampgroundRepository is the persistence surface the service needs.
// GetByID returns (nil, nil) when no record exists.
type CampgroundRepository interface {
	Create(ctx context.Context, cg *models.Campground) error
	GetByID(ctx context.Context, id uint) (*models.Campground, error)
	List(ctx context.Context) ([]models.Campground, error)
	Update(ctx context.Context, cg *models.Campground) error
	AddImages(ctx context.Context, campgroundID uint, imgs []models.Image) error
	RemoveImages(ctx context.Context, campgroundID uint, keys []string) error
	Delete(ctx context.Context, id uint) error
}

// ImageUpload is one multipart file, fully read by the boundary layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CampgroundService owns the campground lifecycle: authorization,
// validation, attachment uploads and the delete cascade.
type CampgroundService struct {
	repo    CampgroundRepository
	reviews ReviewRepository
	store   storage.ObjectStore
}

func NewCampgroundService(repo CampgroundRepository, reviews ReviewRepository, store storage.ObjectStore) *CampgroundService {
	return &CampgroundService{
		repo:    repo,
		reviews: reviews,
		store:   store,
	}
}

// Create uploads every file, then persists the record with the caller
// as author. If any step fails, objects already uploaded for this call
// are deleted again (best effort) so storage holds no orphans.
func (s *CampgroundService) Create(ctx context.Context, principal uint, form CampgroundForm, files []ImageUpload) (*models.Campground, error) {
	if err := Authorize(principal, ActionCreate, 0); err != nil {
		return nil, err
	}
	if err := ValidateCampground(form); err != nil {
		return nil, err
	}

	atts, err := s.uploadAll(ctx, files)
	if err != nil {
		return nil, err
	}

	cg := &models.Campground{
		Title:       form.Title,
		Price:       form.Price,
		Location:    form.Location,
		Description: form.Description,
		AuthorID:    principal,
		Images:      imagesFrom(atts, 0),
	}
	if err := s.repo.Create(ctx, cg); err != nil {
		s.discard(ctx, atts)
		return nil, persistErr(err)
	}
	return cg, nil
}

// Get is a public read; no authorization applies.
func (s *CampgroundService) Get(ctx context.Context, id uint) (*models.Campground, error) {
	return s.fetch(ctx, id)
}

func (s *CampgroundService) List(ctx context.Context) ([]models.Campground, error) {
	cgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, persistErr(err)
	}
	return cgs, nil
}

// Update edits the record's fields, appends newly uploaded images and
// removes the images named by deleteKeys. Uploads happen before
// removals so a failed upload leaves the existing sequence untouched.
// Storage deletions that fail are logged and the references dropped
// anyway; partial storage changes are not rolled back.
func (s *CampgroundService) Update(ctx context.Context, principal, id uint, form CampgroundForm, newFiles []ImageUpload, deleteKeys []string) (*models.Campground, error) {
	cg, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(principal, ActionUpdate, cg.AuthorID); err != nil {
		return nil, err
	}
	if err := ValidateCampground(form); err != nil {
		return nil, err
	}

	// AuthorID stays as created; only the listed fields are editable.
	cg.Title = form.Title
	cg.Price = form.Price
	cg.Location = form.Location
	cg.Description = form.Description
	if err := s.repo.Update(ctx, cg); err != nil {
		return nil, persistErr(err)
	}

	if len(newFiles) > 0 {
		atts, err := s.uploadAll(ctx, newFiles)
		if err != nil {
			return nil, err
		}
		imgs := imagesFrom(atts, cg.ID)
		for i := range imgs {
			imgs[i].Position = len(cg.Images) + i
		}
		if err := s.repo.AddImages(ctx, cg.ID, imgs); err != nil {
			s.discard(ctx, atts)
			return nil, persistErr(err)
		}
		cg.Images = append(cg.Images, imgs...)
	}

	if len(deleteKeys) > 0 {
		owned := ownedKeys(cg.Images, deleteKeys)
		for _, key := range owned {
			if err := s.store.Delete(ctx, key); err != nil {
				log.Printf("remove image %s: %v", key, err)
			}
		}
		if err := s.repo.RemoveImages(ctx, cg.ID, owned); err != nil {
			return nil, persistErr(err)
		}
		cg.Images = withoutKeys(cg.Images, owned)
	}
	return cg, nil
}

// Delete cascades: attachments first, then reviews, then the record.
// One storage deletion is attempted per image; failures are logged and
// never block the user-facing delete.
func (s *CampgroundService) Delete(ctx context.Context, principal, id uint) error {
	cg, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(principal, ActionDelete, cg.AuthorID); err != nil {
		return err
	}

	for _, img := range cg.Images {
		if err := s.store.Delete(ctx, img.StorageKey); err != nil {
			log.Printf("delete image %s: %v", img.StorageKey, err)
		}
	}
	if err := s.reviews.DeleteByCampground(ctx, cg.ID); err != nil {
		return persistErr(err)
	}
	if err := s.repo.Delete(ctx, cg.ID); err != nil {
		return persistErr(err)
	}
	return nil
}

func (s *CampgroundService) fetch(ctx context.Context, id uint) (*models.Campground, error) {
	cg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, persistErr(err)
	}
	if cg == nil {
		return nil, ErrCampgroundNotFound
	}
	return cg, nil
}

func (s *CampgroundService) uploadAll(ctx context.Context, files []ImageUpload) ([]storage.Attachment, error) {
	atts := make([]storage.Attachment, 0, len(files))
	for _, f := range files {
		att, err := s.store.Upload(ctx, f.Filename, f.ContentType, f.Data)
		if err != nil {
			s.discard(ctx, atts)
			return nil, storageErr(err)
		}
		atts = append(atts, att)
	}
	return atts, nil
}

func (s *CampgroundService) discard(ctx context.Context, atts []storage.Attachment) {
	for _, att := range atts {
		if err := s.store.Delete(ctx, att.Key); err != nil {
			log.Printf("cleanup %s: %v", att.Key, err)
		}
	}
}

func imagesFrom(atts []storage.Attachment, campgroundID uint) []models.Image {
	imgs := make([]models.Image, 0, len(atts))
	for i, att := range atts {
		imgs = append(imgs, models.Image{
			CampgroundID: campgroundID,
			URL:          att.URL,
			ThumbnailURL: att.ThumbnailURL,
			StorageKey:   att.Key,
			Position:     i,
		})
	}
	return imgs
}

func ownedKeys(imgs []models.Image, keys []string) []string {
	set := make(map[string]bool, len(imgs))
	for _, img := range imgs {
		set[img.StorageKey] = true
	}
	owned := make([]string, 0, len(keys))
	for _, key := range keys {
		// set also serves as a seen-filter so a repeated form value
		// cannot trigger two deletions of the same object.
		if set[key] {
			set[key] = false
			owned = append(owned, key)
		}
	}
	return owned
}

func withoutKeys(imgs []models.Image, keys []string) []models.Image {
	drop := make(map[string]bool, len(keys))
	for _, key := range keys {
		drop[key] = true
	}
	kept := make([]models.Image, 0, len(imgs))
	for _, img := range imgs {
		if !drop[img.StorageKey] {
			kept = append(kept, img)
		}
	}
	return kept
}
