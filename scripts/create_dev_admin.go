package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/config"
	"github.com/franciscosanchezn/meal-master-api/internal/database"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	email := flag.String("email", "admin@mealmaster.dev", "Account email")
	name := flag.String("name", "Dev Admin", "Account display name")
	role := flag.String("role", models.RoleAdmin, "Account role (admin or member)")
	flag.Parse()

	if *role != models.RoleAdmin && *role != models.RoleMember {
		log.Fatalf("Unknown role %q", *role)
	}

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(database.NewDatabaseConfig(conf))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	ctx := context.Background()
	users := services.NewUserService(db)
	if _, err := users.UpsertUser(ctx, models.UserProfile{Email: *email, Name: *name}); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	if _, err := users.SetUserRole(ctx, *email, models.UserPatch{Role: role}); err != nil {
		log.Fatal("Failed to set role:", err)
	}

	token, err := auth.NewSessionManager(conf.JWTSecret).Issue(*email, *name)
	if err != nil {
		log.Fatal("Failed to sign session token:", err)
	}

	fmt.Printf("✓ Development account %s has role '%s'\n", *email, *role)
	fmt.Println("\nUse this session for testing:")
	fmt.Printf("curl http://%s:%d/users \\\n", conf.Host, conf.Port)
	fmt.Printf("  --cookie '%s=%s'\n", auth.CookieName, token)
}
