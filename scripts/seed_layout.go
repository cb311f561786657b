//go:build ignore

// This script seeds a yard's stack layout into MongoDB from a JSON file.
// Run with: go run scripts/seed_layout.go -file layout.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/repository"
)

func main() {
	uri := flag.String("uri", envOr("MONGODB_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	dbName := flag.String("db", envOr("MONGODB_DATABASE", "yard_service"), "MongoDB database name")
	yardID := flag.String("yard", "main", "Yard identifier the layout belongs to")
	file := flag.String("file", "", "Path to a JSON file holding the stack list")
	updatedBy := flag.String("by", "seed-script", "Recorded as the layout's author")
	flag.Parse()

	fmt.Println("=== Yard Service Layout Seeder ===")
	fmt.Println()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	var stacks []model.Stack
	if err := json.Unmarshal(data, &stacks); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", *file, err)
		os.Exit(1)
	}
	if len(stacks) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s holds no stacks\n", *file)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.NewMongoDB(*uri, *dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close(ctx)
	}()

	repo := repository.NewStackLayoutsRepository(db)
	config, err := repo.Replace(ctx, *yardID, stacks, *updatedBy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error storing layout: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stored layout for yard %q:\n", config.YardID)
	fmt.Printf("  version: %d\n", config.Version)
	fmt.Printf("  stacks:  %d\n", len(config.Stacks))
	fmt.Println()
	fmt.Println("The service picks up the new layout on its next cache refresh;")
	fmt.Println("restart it or wait out the layout cache TTL to see it immediately.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
