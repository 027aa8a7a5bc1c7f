package main

import (
	"context"
	"log"

	"studysnap-be/internal/bootstrap"
	"studysnap-be/internal/config"
	"studysnap-be/internal/server"
	"studysnap-be/internal/tracer"
	"studysnap-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
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
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Pre-run Condition Checks
	if err := container.RunPreConditions(context.Background(), gormDB, cfg); err != nil {
		log.Fatalf("Pre-run condition check failed: %v", err)
	}

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
