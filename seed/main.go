package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qazkids/qazkids_api/seed/seeders"
	"github.com/qazkids/qazkids_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, games, films, content, admin")
		dbURL    = flag.String("db", "", "Database URL or sqlite path (overrides DATABASE_URL env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := connect(*dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(services.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		err = mainSeeder.SeedAll()
	case "games":
		log.Println("Seeding games only...")
		err = mainSeeder.SeedGamesOnly()
	case "films":
		log.Println("Seeding films only...")
		err = mainSeeder.SeedFilmsOnly()
	case "content":
		log.Println("Seeding content only...")
		err = mainSeeder.SeedContentOnly()
	case "admin":
		log.Println("Seeding admin user only...")
		err = mainSeeder.SeedAdminOnly()
	default:
		log.Fatalf("Unknown seed type: %s", *seedType)
	}

	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seeding finished")
}

func connect(override string) (*gorm.DB, error) {
	url := override
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Info)}

	if os.Getenv("DB_DRIVER") == "sqlite" || url == "" {
		path := url
		if path == "" {
			path = os.Getenv("DB_NAME")
		}
		if path == "" {
			path = "qazkids.db"
		}
		log.Printf("Connecting to sqlite database: %s", path)
		return gorm.Open(sqlite.Open(path), cfg)
	}

	log.Println("Connecting to postgres database")
	return gorm.Open(postgres.Open(url), cfg)
}

func showHelp() {
	log.Println(`QazKids database seeder

Usage:
  seed [flags]

Flags:
  -type string   Type of seeding: all, games, films, content, admin (default "all")
  -db string     Database URL or sqlite path (overrides DATABASE_URL)
  -help          Show this message

Environment:
  DATABASE_URL   Postgres connection string
  DB_DRIVER      Set to "sqlite" to seed a local sqlite file
  DB_NAME        Sqlite file path when DB_DRIVER=sqlite`)
}
