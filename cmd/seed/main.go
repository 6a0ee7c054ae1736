// Command main runs the database seeder for Agora.
package main

import (
	"flag"
	"log"

	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of demo users to create")
	numThreads := flag.Int("threads", 40, "Number of threads to create")
	maxReplies := flag.Int("max-replies", 8, "Max replies per thread")
	spacesOnly := flag.Bool("spaces-only", false, "Seed only the built-in spaces and channels")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *spacesOnly {
		if err := seed.Spaces(db); err != nil {
			log.Fatalf("Built-in space seeding failed: %v", err)
		}
		log.Println("Built-in spaces seeded.")
		return
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:   *numUsers,
		NumThreads: *numThreads,
		MaxReplies: *maxReplies,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
}
