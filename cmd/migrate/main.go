package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"toolshub/internal/config"
)

const migrationsDir = "migrations"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "up, down, down-to, status or create")
	name := flag.String("name", "", "name of the new migration (create only)")
	targetVersion := flag.Int64("version", 0, "target version (down-to only)")
	flag.Parse()

	cfg := config.Load()

	db, err := openCatalogDB(cfg, *command == "up")
	if err != nil {
		log.Fatalf("connect to %s: %v", cfg.Database.Name, err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set goose dialect: %v", err)
	}

	if err := run(db, *command, *name, *targetVersion); err != nil {
		log.Fatalf("%s: %v", *command, err)
	}
}

func run(db *sql.DB, command, name string, targetVersion int64) error {
	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			return err
		}
		log.Println("catalog schema is up to date")
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			return err
		}
		log.Println("rolled back one migration")
	case "down-to":
		if err := goose.DownTo(db, migrationsDir, targetVersion); err != nil {
			return err
		}
		log.Printf("rolled back to version %d", targetVersion)
	case "status":
		return goose.Status(db, migrationsDir)
	case "create":
		if name == "" {
			return errors.New("-name is required")
		}
		if err := goose.Create(db, migrationsDir, name, "sql"); err != nil {
			return err
		}
		log.Printf("created migration %s", name)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

// openCatalogDB connects to the configured database. On "up" a missing
// database is created first so a fresh checkout migrates in one step.
func openCatalogDB(cfg *config.Config, createIfMissing bool) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsnFor(cfg, cfg.Database.Name))
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err == nil {
		return db, nil
	}
	db.Close()

	if !createIfMissing || !isDatabaseMissing(err) {
		return nil, err
	}

	if err := createDatabase(cfg); err != nil {
		return nil, fmt.Errorf("create database: %w", err)
	}

	db, err = sql.Open("postgres", dsnFor(cfg, cfg.Database.Name))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func dsnFor(cfg *config.Config, dbName string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		dbName,
		cfg.Database.SSLMode,
	)
}

func isDatabaseMissing(err error) bool {
	var pqErr *pq.Error
	// 3D000 invalid_catalog_name
	return errors.As(err, &pqErr) && pqErr.Code == "3D000"
}

func createDatabase(cfg *config.Config) error {
	// connect to the maintenance database to issue CREATE DATABASE
	admin, err := sql.Open("postgres", dsnFor(cfg, "postgres"))
	if err != nil {
		return err
	}
	defer admin.Close()

	if err := admin.Ping(); err != nil {
		return err
	}

	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.Database.Name)); err != nil {
		var pqErr *pq.Error
		// 42P04 duplicate_database: lost a race with another migrator, fine
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return err
	}

	log.Printf("created database %s", cfg.Database.Name)
	return nil
}
