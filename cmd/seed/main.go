// Seeds a development database with a demo user and a handful of recipes.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/recipeshare/backend/config"
	"github.com/recipeshare/backend/internal/database"
	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	users := service.NewUserService(db, cfg.BcryptCost)
	recipes := service.NewRecipeService(db)

	demo, err := users.Create(ctx, "demo", "Demo Cook", "demopassword")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	for i := 1; i <= 5; i++ {
		recipe := &models.Recipe{
			Name:             fmt.Sprintf("Demo recipe %d", i),
			ShortDescription: fmt.Sprintf("Short description for demo recipe %d", i),
			Description:      fmt.Sprintf("Long description for demo recipe %d", i),
			Difficulty:       (i % 5) + 1,
			EstimatedMinutes: 10 * i,
			Ingredients: []models.Ingredient{
				{Position: 0, Name: "flour", Quantity: 200, Unit: "g"},
				{Position: 1, Name: "water", Quantity: 100, Unit: "ml"},
			},
			Steps: []models.Step{
				{Position: 0, Description: "mix everything"},
				{Position: 1, Description: "cook until done", Tip: "taste as you go"},
			},
		}
		if _, err := recipes.Create(ctx, demo.ID, recipe); err != nil {
			log.Fatalf("Failed to create recipe %d: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	log.Println("Seeded demo user and recipes")
}
