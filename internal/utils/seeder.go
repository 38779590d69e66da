package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	"saporis/internal/fitness"
	"saporis/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const DefaultNumUsers = 100

// All seeded accounts share one password so they are usable for manual
// testing against the API.
const testPassword = "TestPassword123!"

func SeedUsers(numUsers int, withConsumption bool) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash test password: %v", err)
	}

	log.Printf("Starting to seed %d users", numUsers)
	startTime := time.Now()
	r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	var maxID uint
	row := db.Model(&models.User{}).Select("COALESCE(MAX(id), 0)").Row()
	if err := row.Scan(&maxID); err != nil {
		return fmt.Errorf("failed to get max user ID: %v", err)
	}
	baseIndex := int(maxID) + 1

	for i := 0; i < numUsers; i++ {
		user := generateUser(baseIndex+i, string(hashed), r)
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %d: %v", baseIndex+i, err)
		}

		if withConsumption {
			if err := seedConsumptionWeek(db, user.ID, user.CalorieGoal, r); err != nil {
				return err
			}
		}

		if (i+1)%100 == 0 {
			log.Printf("Created %d users", i+1)
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Successfully created %d users in %s", numUsers, elapsed)
	return nil
}

func CleanupTestUsers() error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	var testUsers []models.User
	if err := db.Where("email LIKE ?", "testuser%@example.com").Find(&testUsers).Error; err != nil {
		return fmt.Errorf("failed to find test users: %v", err)
	}

	for _, user := range testUsers {
		db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Consumption{})
		db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.ChatHistory{})
	}

	result := db.Unscoped().Where("email LIKE ?", "testuser%@example.com").Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup test users: %v", result.Error)
	}

	log.Printf("Deleted %d test users", result.RowsAffected)
	return nil
}

func GetUserCount() (int64, error) {
	db, err := connectToDatabase()
	if err != nil {
		return 0, err
	}

	var count int64
	result := db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count users: %v", result.Error)
	}

	return count, nil
}

func connectToDatabase() (*gorm.DB, error) {
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "saporis")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbHost, dbUser, dbPassword, dbName, dbPort, dbSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func generateUser(index int, hashedPassword string, r *mathrand.Rand) models.User {
	weight := 50.0 + r.Float64()*50.0  // 50-100 kg
	height := 150.0 + r.Float64()*40.0 // 150-190 cm
	age := 18 + r.Intn(50)

	multipliers := make([]float64, 0, len(fitness.ActivityLevels))
	for m := range fitness.ActivityLevels {
		multipliers = append(multipliers, m)
	}
	multiplier := multipliers[r.Intn(len(multipliers))]

	goals := []fitness.Goal{fitness.GoalLose, fitness.GoalMaintain, fitness.GoalGain}
	goal := goals[r.Intn(len(goals))]

	calorieGoal, _ := fitness.CalorieTarget(weight, height, float64(age), multiplier, goal, fitness.PolicyRatio)
	bgColour, fontColour := GenerateAvatarColours()

	return models.User{
		FirstName:          "Test",
		LastName:           fmt.Sprintf("User%d", index),
		Email:              fmt.Sprintf("testuser%d@example.com", index),
		Password:           hashedPassword,
		Age:                age,
		Height:             height,
		Weight:             weight,
		ActivityMultiplier: multiplier,
		Goal:               string(goal),
		CalorieGoal:        calorieGoal,
		BgColour:           bgColour,
		FontColour:         fontColour,
	}
}

// seedConsumptionWeek creates the past seven days of consumption records so
// the dashboard and analytics endpoints have data to work with.
func seedConsumptionWeek(db *gorm.DB, userID uint, calorieGoal int, r *mathrand.Rand) error {
	foods := []string{"Oatmeal with banana", "Grilled chicken salad", "Pasta bolognese",
		"Salmon with rice", "Vegetable stir fry", "Greek yogurt with berries"}

	now := time.Now()
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

		// Calories scatter around the goal; macros roughly follow a
		// 30/45/25 split by calorie contribution.
		calories := float64(calorieGoal) * (0.7 + r.Float64()*0.6)
		record := models.Consumption{
			UserID:    userID,
			Date:      date,
			Weekday:   date.Weekday().String(),
			Calories:  calories,
			Protein:   calories * 0.30 / 4,
			Carbs:     calories * 0.45 / 4,
			Fat:       calories * 0.25 / 9,
			FoodItems: foods[r.Intn(len(foods))],
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create consumption for user %d: %v", userID, err)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
