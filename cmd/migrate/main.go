package main

import (
	"log"

	"studysnap-be/internal/config"
	"studysnap-be/internal/model"
	"studysnap-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:          cfg.Database.Host,
		Port:          cfg.Database.Port,
		User:          cfg.Database.User,
		Password:      cfg.Database.Password,
		DBName:        cfg.Database.Name,
		SSLMode:       cfg.Database.SSLMode,
		RetryAttempts: cfg.Database.RetryAttempts,
	})
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.Classroom{},
		&model.ClassroomUser{},
		&model.Note{},
		&model.Rating{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
