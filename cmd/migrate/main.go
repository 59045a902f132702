package main

import (
	"fmt"
	"log"
	"os"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"
	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/database"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: migrate <up|down>")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrator := database.NewMigrator(conn)

	switch os.Args[1] {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		fmt.Println("Migrations rolled back")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
