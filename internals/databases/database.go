package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"decofilm_backend/internals/configs"
	bookingModel "decofilm_backend/internals/features/bookings/model"
	calendarModel "decofilm_backend/internals/features/calendar/model"
	customerModel "decofilm_backend/internals/features/customers/model"
	portfolioModel "decofilm_backend/internals/features/portfolio/model"
	projectModel "decofilm_backend/internals/features/projects/model"
	quoteModel "decofilm_backend/internals/features/quotes/model"
	taskModel "decofilm_backend/internals/features/tasks/model"
)

var DB *gorm.DB

var degraded bool

// IsDegraded reports whether the server runs without a configured database.
// In that state every /api route answers 503 "database not configured" — the
// sentinel the admin frontend maps to its sample-data fallback.
func IsDegraded() bool { return degraded }

func ConnectDB() {
	if os.Getenv("DB_HOST") == "" {
		degraded = true
		log.Println("⚠️ No database configured, starting in degraded mode")
		return
	}

	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=decofilm&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if getenv("DB_AUTOMIGRATE", "true") == "true" {
		migrate()
	}
}

func migrate() {
	if err := DB.AutoMigrate(
		&bookingModel.Booking{},
		&quoteModel.Quote{},
		&projectModel.Project{},
		&customerModel.Customer{},
		&portfolioModel.PortfolioItem{},
		&calendarModel.Event{},
		&taskModel.Task{},
	); err != nil {
		log.Fatalf("❌ automigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
