package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/questward/craftforge/internal/config"
	"github.com/questward/craftforge/internal/database"
)

// Seeds a handful of recipes and a demo player so the API can be exercised
// locally without the catalog service running.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	connString := cfg.GetDBConnString()

	if err := database.Migrate(ctx, connString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := database.NewPool(connString, 4, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	recipes := []struct {
		id, name       string
		requiredLevel  int
		resultItemID   string
		resultQuantity int
		xpGained       int
		ingredients    [][2]interface{}
	}{
		{"recipe-rope", "Rope", 1, "rope", 1, 10, [][2]interface{}{{"fiber", 3}}},
		{"recipe-torch", "Torch", 2, "torch", 2, 15, [][2]interface{}{{"stick", 1}, {"resin", 2}}},
		{"recipe-health-potion", "Health Potion", 3, "potion-health", 1, 50, [][2]interface{}{{"herb-1", 2}, {"water-1", 1}}},
		{"recipe-iron-sword", "Iron Sword", 8, "sword-iron", 1, 120, [][2]interface{}{{"ingot-iron", 3}, {"leather", 1}}},
	}

	for _, r := range recipes {
		_, err := pool.Exec(ctx, `
			INSERT INTO recipes (recipe_id, recipe_name, required_level, result_item_id, result_quantity, xp_gained, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			ON CONFLICT (recipe_id) DO NOTHING`,
			r.id, r.name, r.requiredLevel, r.resultItemID, r.resultQuantity, r.xpGained)
		if err != nil {
			log.Fatalf("Failed to seed recipe %s: %v", r.id, err)
		}

		for pos, ing := range r.ingredients {
			_, err := pool.Exec(ctx, `
				INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, position)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (recipe_id, ingredient_id) DO NOTHING`,
				r.id, ing[0], ing[1], pos)
			if err != nil {
				log.Fatalf("Failed to seed ingredients for %s: %v", r.id, err)
			}
		}
		log.Printf("Seeded recipe %s", r.id)
	}

	demoUser := uuid.New().String()
	_, err = pool.Exec(ctx, `
		INSERT INTO player_states (user_id, level, xp, total_xp)
		VALUES ($1, 3, 0, 300)`, demoUser)
	if err != nil {
		log.Fatalf("Failed to seed demo player: %v", err)
	}

	for item, qty := range map[string]int{"herb-1": 10, "water-1": 5, "fiber": 9, "stick": 2, "resin": 4} {
		_, err := pool.Exec(ctx, `
			INSERT INTO inventory_entries (user_id, item_id, quantity)
			VALUES ($1, $2, $3)`, demoUser, item, qty)
		if err != nil {
			log.Fatalf("Failed to seed inventory: %v", err)
		}
	}

	log.Printf("Seeded demo player %s (level 3)", demoUser)
	log.Println("Seed complete")
}
