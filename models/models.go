package models

import (
	"time"
)

type User struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string       `gorm:"size:255;not null"`
	Email       string       `gorm:"size:255;not null;unique"`
	Campgrounds []Campground `gorm:"foreignKey:AuthorID"`
}

type Campground struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string   `gorm:"size:255;not null"`
	Price       float64  `gorm:"not null"`
	Location    string   `gorm:"size:255;not null"`
	Description string   `gorm:"type:text;not null"`
	AuthorID    uint     `gorm:"not null;index"`
	Author      *User    `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Images      []Image  `gorm:"constraint:OnDelete:CASCADE"`
	Reviews     []Review `gorm:"constraint:OnDelete:CASCADE"`
}

// Image is the persisted reference to an object in external storage.
// The binary never touches local disk; URL and StorageKey are the only
// handles we keep.
type Image struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	CampgroundID uint   `gorm:"not null;index"`
	URL          string `gorm:"size:512;not null"`
	ThumbnailURL string `gorm:"size:512"`
	StorageKey   string `gorm:"size:512;not null;uniqueIndex"`
	Position     int    `gorm:"not null"`
}

type Review struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	CampgroundID uint   `gorm:"not null;index"`
	AuthorID     uint   `gorm:"not null;index"`
	Author       *User  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Rating       int    `gorm:"not null"`
	Body         string `gorm:"type:text;not null"`
}
