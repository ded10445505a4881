package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"gostore/config"
	"gostore/internal/pkg/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	cfg := config.LoadConfig()

	var driver, dsn string
	flag.StringVar(&driver, "driver", cfg.StorageDriver, "storage driver (sqlite, postgres, mysql)")
	flag.StringVar(&dsn, "dsn", cfg.StorageDSN, "data source name")
	flag.Parse()

	dialect := database.Dialect(driver)
	if _, err := dialect.DriverName(); err != nil {
		log.Fatalf("goose: %v (memory and redis drivers have no migrations)", err)
	}

	// Connect to the database
	db, err := database.Open(dialect, dsn)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v\n", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // Default to 'up' if no command is provided
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := database.RunMigrations(db, dialect, command, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
