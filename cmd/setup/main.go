// Command setup creates the QuestTown PostgreSQL database if needed and
// applies the blob store migrations. With -reset the database is dropped
// and recreated first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/QuestTown_Go/internal/config"
	"github.com/osse101/QuestTown_Go/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database before migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := envOr(config.EnvDBName, config.DefaultDBName)
	serverURL := connString("postgres")
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, serverURL)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	if *reset {
		log.Printf("Terminating existing connections to database %s...", dbName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
		log.Printf("Database %s dropped.", dbName)
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}
	if !exists {
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		log.Printf("Database %s created.", dbName)
	} else {
		log.Printf("Database %s already exists.", dbName)
	}
	conn.Close(ctx)

	pool, err := database.NewPool(ctx, connString(dbName), database.DefaultPoolOptions())
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration completed successfully.")
}

func connString(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr(config.EnvDBUser, "postgres"),
		envOr(config.EnvDBPassword, "postgres"),
		envOr(config.EnvDBHost, "localhost"),
		envOr(config.EnvDBPort, "5432"),
		dbName,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
