package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"campus-map-api/internal/config"
	"campus-map-api/internal/models"
	"campus-map-api/internal/repository"
	"campus-map-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func main() {
	file := flag.String("file", "", "Path to a buildings CSV (name,latitude,longitude,description,icon_name); the built-in campus buildings are used when empty")
	flag.Parse()

	buildings := models.DefaultBuildings
	if *file != "" {
		fmt.Printf("Starting import from file: %s\n", *file)

		parsed, err := parseCSV(*file)
		if err != nil {
			fmt.Printf("Error parsing CSV: %v\n", err)
			os.Exit(1)
		}
		buildings = parsed
	}

	fmt.Printf("Seeding %d buildings\n", len(buildings))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := seed(ctx, conn, buildings); err != nil {
		fmt.Printf("Error seeding buildings: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, repository.NewRepository(conn), buildings); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully seeded %d buildings\n", len(buildings))
}

// seed upserts every building in one transaction.
func seed(ctx context.Context, conn *pgx.Conn, buildings []models.Building) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repo := repository.NewRepository(tx)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	svc := service.NewBuildingService(repo, zerolog.New(os.Stdout).With().Timestamp().Logger())
	if _, err := svc.Seed(ctx, buildings); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func parseCSV(filePath string) ([]models.Building, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readBuildings(file)
}

func readBuildings(r io.Reader) ([]models.Building, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var buildings []models.Building
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 3 columns", len(record))
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[2])
		}

		b := models.Building{
			Name:      strings.TrimSpace(record[0]),
			Latitude:  lat,
			Longitude: lon,
			IconName:  "map-marker",
		}
		if len(record) > 3 {
			b.Description = record[3]
		}
		if len(record) > 4 && strings.TrimSpace(record[4]) != "" {
			b.IconName = strings.TrimSpace(record[4])
		}

		buildings = append(buildings, b)
	}

	if len(buildings) == 0 {
		return nil, errors.New("no buildings in file")
	}
	return buildings, nil
}

func verifyImport(ctx context.Context, repo *repository.Repository, expected []models.Building) error {
	stored, err := repo.ListBuildings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list buildings: %w", err)
	}

	names := make(map[string]bool, len(stored))
	for _, b := range stored {
		names[b.Name] = true
	}
	for _, b := range expected {
		if !names[b.Name] {
			return fmt.Errorf("building %q missing after import", b.Name)
		}
	}

	fmt.Printf("Buildings in store: %d\n", len(stored))
	return nil
}
