package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"pawplate/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DogProfile{}); err != nil {
		log.Fatalf("Error migrating dog profile table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FeedingScheduleItem{}); err != nil {
		log.Fatalf("Error migrating feeding schedule table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FeedingReminder{}); err != nil {
		log.Fatalf("Error migrating feeding reminder table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NutritionPlan{}); err != nil {
		log.Fatalf("Error migrating nutrition plan table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CommissionSetting{}); err != nil {
		log.Fatalf("Error migrating commission setting table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
