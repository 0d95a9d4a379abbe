// Seeds the default category set. Safe to run repeatedly.
package main

import (
	"log"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/pkg/config"
)

var categories = []models.Category{
	{Name: "Electronics", Type: models.TypePhysical},
	{Name: "Books & Study Material", Type: models.TypePhysical},
	{Name: "Hostel Essentials", Type: models.TypePhysical},
	{Name: "Subject Notes", Type: models.TypeDigital},
	{Name: "Lab Manuals", Type: models.TypeDigital},
	{Name: "Previous Year Questions", Type: models.TypeDigital},
	{Name: "Miscellaneous", Type: models.TypePhysical},
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(&models.Category{}); err != nil {
		log.Fatalf("Failed to migrate categories: %v", err)
	}

	log.Println("Seeding categories...")
	for _, cat := range categories {
		c := cat
		if err := db.Where(models.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}
	log.Println("Categories seeded successfully")
}
