package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"transit_lineas/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// Base syndicates the original deployment ships with; inserted
// idempotently on boot.
var seedSyndicates = []string{"Villa Victoria", "Simón Bolívar", "San Cristóbal"}

// InitDB initializes the database connection using environment variables,
// migrates the registry schema and seeds the base syndicates and the
// bootstrap admin user.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "transit_lineas")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Syndicate{},
		&models.Line{},
		&models.RoutePoint{},
		&models.Stop{},
		&models.AuditRecord{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	seedBaseData(db)

	// Assign to global
	DB = db
}

// seedBaseData inserts the base syndicates and the admin account when
// missing; reruns are no-ops.
func seedBaseData(db *gorm.DB) {
	for _, name := range seedSyndicates {
		var syn models.Syndicate
		if err := db.Where(models.Syndicate{Name: name}).FirstOrCreate(&syn).Error; err != nil {
			log.Printf("seed syndicate %q failed: %v", name, err)
		}
	}

	adminUser := getEnv("ADMIN_USER", "admin")
	adminPass := getEnv("ADMIN_PASS", "admin123")
	var existing models.User
	if err := db.Where("username = ?", adminUser).First(&existing).Error; err == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash admin password: %v", err)
	}
	admin := models.User{Username: adminUser, PasswordHash: string(hash), Role: models.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("admin bootstrap failed: %v", err)
		return
	}
	log.Printf("admin user %q created", adminUser)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
