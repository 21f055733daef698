package main

import (
	"context"
	"fmt"

	"social-vault/pkg/config"
	app "social-vault/services/content/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}
	defer application.Shutdown()

	ctx := context.Background()
	if err := application.Seeder().EnsureSeeded(ctx); err != nil {
		panic(fmt.Sprintf("Failed to seed database: %v", err))
	}

	creators, content, err := application.Store().Counts(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to count records: %v", err))
	}

	fmt.Printf("Database seeded: %d creators, %d content items\n", creators, content)
}
