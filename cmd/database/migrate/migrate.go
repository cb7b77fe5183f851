package migration

import (
	"FoodExpiryTracker/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Printf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Note{}); err != nil {
		log.Printf("Error migrating note database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Tip{}); err != nil {
		log.Printf("Error migrating tip database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ExpiryLabel{}); err != nil {
		log.Printf("Error migrating expiry label database: %v", err)
		return err
	}

	if err := seedReferenceData(db); err != nil {
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedReferenceData populates the read-only tip and expiry-label
// collections on a fresh database. Existing rows are left untouched.
func seedReferenceData(db *gorm.DB) error {
	var tipCount int64
	if err := db.Model(&entities.Tip{}).Count(&tipCount).Error; err != nil {
		return err
	}
	if tipCount == 0 {
		tips := []entities.Tip{
			{Title: "Store herbs like flowers", Body: "Trim the stems and keep fresh herbs upright in a glass of water in the fridge.", Author: "community"},
			{Title: "First in, first out", Body: "Move older items to the front of the shelf so they get used before newer ones.", Author: "community"},
			{Title: "Freeze before it turns", Body: "Bread, ripe bananas and cooked leftovers freeze well a day or two before their expiry date.", Author: "community"},
			{Title: "Keep the fridge at 4°C", Body: "Most fresh food lasts noticeably longer at or below four degrees Celsius.", Author: "community"},
		}
		if err := db.Create(&tips).Error; err != nil {
			return err
		}
	}

	var labelCount int64
	if err := db.Model(&entities.ExpiryLabel{}).Count(&labelCount).Error; err != nil {
		return err
	}
	if labelCount == 0 {
		labels := []entities.ExpiryLabel{
			{Name: "Fresh", Color: "#22c55e", Description: "More than five days until expiry"},
			{Name: "Expiring Soon", Color: "#f59e0b", Description: "Expires within the next five days"},
			{Name: "Expired", Color: "#ef4444", Description: "Past its expiry date"},
		}
		if err := db.Create(&labels).Error; err != nil {
			return err
		}
	}

	return nil
}
