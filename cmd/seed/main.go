package main

import (
	"context"
	"flag"
	"log"

	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/config/db"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/seed"
	"github.com/linskybing/datadesk/pkg/logger"
)

func main() {
	path := flag.String("fixture", "cmd/seed/fixtures.yaml", "YAML fixture with templates and users")
	flag.Parse()

	config.LoadConfig()

	appLog, err := logger.New(config.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	fixture, err := seed.Load(*path)
	if err != nil {
		appLog.Fatal("failed to load fixture", "path", *path, "error", err)
	}

	db.Init()

	services := application.New(repository.NewRepositories(db.DB), application.Infra{Log: appLog})
	if err := seed.Apply(context.Background(), services, fixture, appLog); err != nil {
		appLog.Fatal("seed failed", "error", err)
	}
}
