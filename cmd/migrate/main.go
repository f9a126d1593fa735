package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/pkg/config"
	"github.com/thelineup/draft-engine/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed <file.csv> <season>]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if len(os.Args) < 4 {
			log.Fatal("Usage: migrate seed <file.csv> <season>")
		}
		count, err := seedProjections(db, os.Args[2], os.Args[3])
		if err != nil {
			logrus.Fatalf("Failed to seed projections: %v", err)
		}
		logrus.Infof("Seeded %d player projections", count)

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	if err := db.AutoMigrate(&models.PlayerRecord{}); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}

func dropTables(db *database.DB) error {
	return db.Migrator().DropTable(&models.PlayerRecord{})
}

// seedProjections loads a season projection CSV into the player pool
// table. Expected columns:
//
//	player_id,name,team,position,total_z_score,z_points,z_rebounds,
//	z_assists,z_steals,z_blocks,z_turnovers,z_fg_pct,z_ft_pct,
//	z_three_pm,adp,age,games_played,usage_rate,true_shooting_pct,
//	efficiency_rating
//
// Trailing optional columns may be empty. Turnover z-scores are stored
// with raw sign; the pool loader flips them at read time.
func seedProjections(db *database.DB, path, season string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open projection file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 14 {
		return 0, fmt.Errorf("unexpected header width %d", len(header))
	}

	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read row: %w", err)
		}

		record, err := parseRow(row, season)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}
		if err := db.Save(record).Error; err != nil {
			return count, fmt.Errorf("failed to save player %s: %w", record.PlayerID, err)
		}
		count++
	}
	return count, nil
}

func parseRow(row []string, season string) (*models.PlayerRecord, error) {
	floats := make([]float64, 10)
	for i := 0; i < 10; i++ {
		v, err := strconv.ParseFloat(row[4+i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad z-score column %d: %w", 4+i, err)
		}
		floats[i] = v
	}

	record := &models.PlayerRecord{
		PlayerID:    row[0],
		Season:      season,
		Name:        row[1],
		Team:        row[2],
		Position:    row[3],
		TotalZScore: floats[0],
		ZPoints:     floats[1],
		ZRebounds:   floats[2],
		ZAssists:    floats[3],
		ZSteals:     floats[4],
		ZBlocks:     floats[5],
		ZTurnovers:  floats[6],
		ZFGPct:      floats[7],
		ZFTPct:      floats[8],
		ZThreePM:    floats[9],
	}

	record.ADP = optFloat(row, 14)
	record.Age = optInt(row, 15)
	record.GamesPlayed = optInt(row, 16)
	record.UsageRate = optFloat(row, 17)
	record.TrueShootingPct = optFloat(row, 18)
	record.EfficiencyRating = optFloat(row, 19)
	return record, nil
}

func optFloat(row []string, idx int) *float64 {
	if idx >= len(row) || row[idx] == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(row[idx], 64); err == nil {
		return &v
	}
	return nil
}

func optInt(row []string, idx int) *int {
	if idx >= len(row) || row[idx] == "" {
		return nil
	}
	if v, err := strconv.Atoi(row[idx]); err == nil {
		return &v
	}
	return nil
}
