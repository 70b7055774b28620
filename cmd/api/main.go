package main

import (
	"log"

	config "github.com/anjiri1684/workforce_tracker/configs"
	"github.com/anjiri1684/workforce_tracker/database"
	"github.com/anjiri1684/workforce_tracker/handlers"
	"github.com/anjiri1684/workforce_tracker/routes"
	"github.com/anjiri1684/workforce_tracker/storage"
)

func main() {
	var store storage.Store

	dsn := config.Config("DATABASE_URL")
	if dsn == "" {
		log.Println("DATABASE_URL not set, using the in-memory store")
		store = storage.NewMemoryStore()
	} else {
		db, err := database.Connect(dsn)
		if err != nil {
			log.Fatalf("🔥 %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("🔥 %v", err)
		}
		if err := database.SeedAdmin(db); err != nil {
			log.Fatalf("🔥 %v", err)
		}
		store = storage.NewGormStore(db)
	}

	h := handlers.New(store)
	app := routes.Setup(h)

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
