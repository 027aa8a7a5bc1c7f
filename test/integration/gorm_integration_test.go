package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"studysnap-be/internal/repository/unitofwork"
	"studysnap-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("Skipping integration test: DB_HOST not set")
	}

	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:          host,
		Port:          getEnvOr("DB_PORT", "5432"),
		User:          getEnvOr("DB_USER", "studysnap"),
		Password:      os.Getenv("DB_PASS"),
		DBName:        getEnvOr("DB_NOTE_DATABASE", "studysnap_notedb"),
		SSLMode:       getEnvOr("DB_SSL_MODE", "disable"),
		RetryAttempts: 1,
	})
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ClassroomRepository())
	assert.NotNil(t, uow.NoteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check Rating Repository", func(t *testing.T) {
		count, err := uow.RatingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Rating count: %d", count)
	})
}

func getEnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
