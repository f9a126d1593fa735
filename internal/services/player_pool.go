package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/thelineup/draft-engine/internal/models"
)

const playerPoolCacheTTL = 15 * time.Minute

// PlayerPoolService loads the season projection pool from the database,
// with a Redis cache in front of it. Loading is also where the turnover
// z-score gets negated: source projections store turnovers with raw sign
// (more turnovers, higher value), and everything downstream assumes
// higher is better in every category.
type PlayerPoolService struct {
	db     *gorm.DB
	cache  *CacheService
	logger *logrus.Logger
}

func NewPlayerPoolService(db *gorm.DB, cache *CacheService, logger *logrus.Logger) *PlayerPoolService {
	return &PlayerPoolService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Load returns the player pool for a season, sorted by composite rating
// descending. Cache hit skips the database entirely.
func (s *PlayerPoolService) Load(ctx context.Context, season string) (*models.PlayerPool, error) {
	key := PlayerPoolCacheKey(season)

	if s.cache != nil {
		var cached []models.PlayerRecord
		if err := s.cache.Get(ctx, key, &cached); err == nil && len(cached) > 0 {
			s.logger.WithFields(logrus.Fields{
				"season":  season,
				"players": len(cached),
			}).Debug("Player pool served from cache")
			return models.NewPlayerPool(cached), nil
		}
	}

	var records []models.PlayerRecord
	err := s.db.WithContext(ctx).
		Where("season = ?", season).
		Order("total_z_score DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load player pool for season %s: %w", season, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no players found for season %s", season)
	}

	normalizeTurnovers(records)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, records, playerPoolCacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache player pool")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"season":  season,
		"players": len(records),
	}).Info("Player pool loaded")
	return models.NewPlayerPool(records), nil
}

// normalizeTurnovers flips the turnover z-score sign so a low-turnover
// player scores positive. This is the single inversion point; no other
// code may negate the column again.
func normalizeTurnovers(records []models.PlayerRecord) {
	for i := range records {
		records[i].ZTurnovers = -records[i].ZTurnovers
	}
}
