package models

// PlayerRecord is one player-season row of the materialized player pool.
// Z-scores arrive normalized per category; the loader flips the turnover
// sign at load time so that inside the engine a higher z-score is better
// in every category, turnovers included. Nothing downstream may re-invert.
type PlayerRecord struct {
	PlayerID string `gorm:"primaryKey;column:player_id" json:"player_id"`
	Season   string `gorm:"primaryKey;column:season" json:"season"`
	Name     string `gorm:"not null" json:"name"`
	Team     string `gorm:"not null" json:"team"`
	Position string `gorm:"not null" json:"position"`

	TotalZScore float64 `gorm:"column:total_z_score;not null;index" json:"total_z_score"`

	ZPoints    float64 `gorm:"column:z_points" json:"z_points"`
	ZRebounds  float64 `gorm:"column:z_rebounds" json:"z_rebounds"`
	ZAssists   float64 `gorm:"column:z_assists" json:"z_assists"`
	ZSteals    float64 `gorm:"column:z_steals" json:"z_steals"`
	ZBlocks    float64 `gorm:"column:z_blocks" json:"z_blocks"`
	ZTurnovers float64 `gorm:"column:z_turnovers" json:"z_turnovers"`
	ZFGPct     float64 `gorm:"column:z_fg_pct" json:"z_fg_pct"`
	ZFTPct     float64 `gorm:"column:z_ft_pct" json:"z_ft_pct"`
	ZThreePM   float64 `gorm:"column:z_three_pm" json:"z_three_pm"`

	// ADP is nullable: deep-bench players never show up in reference
	// drafts. Absent means "very late".
	ADP *float64 `gorm:"column:adp" json:"adp,omitempty"`

	// Advanced attributes are optional; older seasons lack them.
	Age              *int     `gorm:"column:age" json:"age,omitempty"`
	GamesPlayed      *int     `gorm:"column:games_played" json:"games_played,omitempty"`
	UsageRate        *float64 `gorm:"column:usage_rate" json:"usage_rate,omitempty"`
	TrueShootingPct  *float64 `gorm:"column:true_shooting_pct" json:"true_shooting_pct,omitempty"`
	EfficiencyRating *float64 `gorm:"column:player_efficiency_rating" json:"player_efficiency_rating,omitempty"`
}

// TableName specifies the table name for GORM
func (PlayerRecord) TableName() string {
	return "player_pool"
}

// ZScore returns the player's z-score for the given category. Higher is
// better for all nine categories.
func (p *PlayerRecord) ZScore(c Category) float64 {
	switch c {
	case CategoryPoints:
		return p.ZPoints
	case CategoryRebounds:
		return p.ZRebounds
	case CategoryAssists:
		return p.ZAssists
	case CategorySteals:
		return p.ZSteals
	case CategoryBlocks:
		return p.ZBlocks
	case CategoryTurnovers:
		return p.ZTurnovers
	case CategoryFGPct:
		return p.ZFGPct
	case CategoryFTPct:
		return p.ZFTPct
	case CategoryThreePM:
		return p.ZThreePM
	default:
		return 0
	}
}

// PrimaryPosition returns the first token of the player's position string.
func (p *PlayerRecord) PrimaryPosition() string {
	return PrimaryPosition(p.Position)
}

// PlayerPool is an in-memory, read-only view of the season's player pool
// with fast lookup by player ID.
type PlayerPool struct {
	players []PlayerRecord
	byID    map[string]*PlayerRecord
}

// NewPlayerPool builds a pool from records ordered however the caller
// loaded them. Callers are expected to order by composite rating descending
// before constructing the pool.
func NewPlayerPool(records []PlayerRecord) *PlayerPool {
	pool := &PlayerPool{
		players: records,
		byID:    make(map[string]*PlayerRecord, len(records)),
	}
	for i := range pool.players {
		pool.byID[pool.players[i].PlayerID] = &pool.players[i]
	}
	return pool
}

// Get returns the record for id, or nil if the pool has no such player.
func (pp *PlayerPool) Get(id string) *PlayerRecord {
	return pp.byID[id]
}

// All returns the pool's records in load order.
func (pp *PlayerPool) All() []PlayerRecord {
	return pp.players
}

// Size returns the number of players in the pool.
func (pp *PlayerPool) Size() int {
	return len(pp.players)
}

// Lookup resolves a list of player IDs to records, skipping unknown IDs.
func (pp *PlayerPool) Lookup(ids []string) []*PlayerRecord {
	records := make([]*PlayerRecord, 0, len(ids))
	for _, id := range ids {
		if rec := pp.byID[id]; rec != nil {
			records = append(records, rec)
		}
	}
	return records
}

// Available returns the pool's records minus the drafted set, preserving
// load order.
func (pp *PlayerPool) Available(drafted []string) []PlayerRecord {
	taken := make(map[string]bool, len(drafted))
	for _, id := range drafted {
		taken[id] = true
	}
	available := make([]PlayerRecord, 0, len(pp.players)-len(drafted))
	for _, p := range pp.players {
		if !taken[p.PlayerID] {
			available = append(available, p)
		}
	}
	return available
}
