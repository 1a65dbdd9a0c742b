package main

import (
	"fmt"
	"log"
	"math/rand"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campwright/campwright/internal/config"
	"github.com/campwright/campwright/models"
)

var descriptors = []string{
	"Forest", "Ancient", "Petrified", "Roaring", "Cascade",
	"Tumbling", "Silent", "Redwood", "Bullfrog", "Maple",
	"Misty", "Elk", "Grizzly", "Ocean", "Sky", "Dusty", "Diamond",
}

var places = []string{
	"Flats", "Village", "Canyon", "Pond", "Group Camp", "Horse Camp",
	"Ghost Town", "Camp", "Dispersed Camp", "Backcountry", "River",
	"Creek", "Creekside", "Bay", "Spring", "Bayshore", "Sands",
	"Mule Camp", "Hunting Camp", "Cliffs", "Hollow",
}

var locations = []string{
	"Bend, Oregon", "Moab, Utah", "Estes Park, Colorado",
	"Gatlinburg, Tennessee", "Sedona, Arizona", "Jackson, Wyoming",
	"Asheville, North Carolina", "Whitefish, Montana",
	"Port Angeles, Washington", "South Lake Tahoe, California",
}

const description = "Lorem ipsum dolor sit amet consectetur adipisicing elit. " +
	"Quibusdam dolores vero perferendis laudantium, consequuntur voluptatibus " +
	"nulla architecto, sit soluta esse iure sed labore ipsam a cum nihil atque " +
	"molestiae deserunt!"

func sample(list []string) string {
	return list[rand.Intn(len(list))]
}

// Seeds the database with fixture campgrounds owned by a throwaway
// user. Wipes existing campground data first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(models.User{}, models.Campground{}, models.Image{}, models.Review{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	if err := db.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Where("1 = 1").Delete(&models.Image{}).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Where("1 = 1").Delete(&models.Campground{}).Error; err != nil {
		log.Fatal(err)
	}

	seeder := models.User{Name: "Seed User", Email: "seeds@campwright.dev"}
	if err := db.Where("email = ?", seeder.Email).FirstOrCreate(&seeder).Error; err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 300; i++ {
		cg := models.Campground{
			Title:       fmt.Sprintf("%s %s", sample(descriptors), sample(places)),
			Location:    sample(locations),
			Price:       float64(rand.Intn(20) + 10),
			Description: description,
			AuthorID:    seeder.ID,
			Images: []models.Image{
				{
					URL:        "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4",
					StorageKey: fmt.Sprintf("campgrounds/originals/seed-%d-a", i),
					Position:   0,
				},
				{
					URL:        "https://images.unsplash.com/photo-1487730116645-74489c95b41b",
					StorageKey: fmt.Sprintf("campgrounds/originals/seed-%d-b", i),
					Position:   1,
				},
			},
		}
		if err := db.Create(&cg).Error; err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Seeded 300 campgrounds")
}
