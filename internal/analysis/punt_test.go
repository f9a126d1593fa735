package analysis

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/models"
)

func TestDetectNeedsMinimumPlayers(t *testing.T) {
	pool := models.NewPlayerPool([]models.PlayerRecord{
		scorer("a", "PG", models.CategoryPoints, -5),
		scorer("b", "PG", models.CategoryPoints, -5),
	})
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect([]string{"a", "b"}, nil, 0)
	assert.Equal(t, ConfidenceNone, report.Confidence)
	assert.Empty(t, report.Candidates)
	assert.Equal(t, "Not enough players drafted to evaluate punt strategies", report.Message)
	assert.False(t, report.Active())
}

// doubleTankLeague puts the user (team 1) dead last in turnovers and FT%
// with deeply negative totals, against five healthy opponents.
func doubleTankLeague() (*models.PlayerPool, map[int][]string) {
	records := []models.PlayerRecord{
		{PlayerID: "u1", Name: "u1", Team: "TST", Position: "PG", ZTurnovers: -2.0, ZFTPct: -1.6},
		{PlayerID: "u2", Name: "u2", Team: "TST", Position: "SG", ZTurnovers: -1.5, ZFTPct: -1.4},
		{PlayerID: "u3", Name: "u3", Team: "TST", Position: "C", ZTurnovers: -1.8, ZFTPct: -1.2},
	}
	rosters := map[int][]string{1: {"u1", "u2", "u3"}}
	for i := 2; i <= 6; i++ {
		id := fmt.Sprintf("opp%d", i)
		records = append(records, models.PlayerRecord{
			PlayerID: id, Name: id, Team: "TST", Position: "SF",
			ZTurnovers: 1.0, ZFTPct: 1.0,
		})
		rosters[i] = []string{id}
	}
	return models.NewPlayerPool(records), rosters
}

func TestDetectHighConfidenceFromLeagueStandings(t *testing.T) {
	pool, rosters := doubleTankLeague()
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect(rosters[1], rosters, 1)
	require.Equal(t, ConfidenceHigh, report.Confidence)
	assert.True(t, report.Active())

	punted := report.PuntedCategories()
	assert.True(t, punted[models.CategoryTurnovers])
	assert.True(t, punted[models.CategoryFTPct])
	assert.Contains(t, report.Message, "Clear punt strategy")
	assert.NotEmpty(t, report.Recommendations)
}

func TestDetectSingleHighAggregatesToMedium(t *testing.T) {
	records := []models.PlayerRecord{
		{PlayerID: "u1", Name: "u1", Team: "TST", Position: "PG", ZTurnovers: -2.0},
		{PlayerID: "u2", Name: "u2", Team: "TST", Position: "SG", ZTurnovers: -1.5},
		{PlayerID: "u3", Name: "u3", Team: "TST", Position: "C", ZTurnovers: -1.8},
	}
	rosters := map[int][]string{1: {"u1", "u2", "u3"}}
	for i := 2; i <= 6; i++ {
		id := fmt.Sprintf("opp%d", i)
		records = append(records, scorer(id, "SF", models.CategoryTurnovers, 1.0))
		rosters[i] = []string{id}
	}
	pool := models.NewPlayerPool(records)
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect(rosters[1], rosters, 1)
	assert.Equal(t, ConfidenceMedium, report.Confidence)
	require.Len(t, report.Candidates, 1)
	assert.Equal(t, models.CategoryTurnovers, report.Candidates[0].Category)
	assert.Equal(t, ConfidenceHigh, report.Candidates[0].Confidence)
}

func TestDetectAbsoluteTotalWithoutLeague(t *testing.T) {
	records := []models.PlayerRecord{
		scorer("a", "C", models.CategoryThreePM, -1.8),
		scorer("b", "C", models.CategoryThreePM, -1.5),
		scorer("c", "C", models.CategoryThreePM, -1.2),
	}
	pool := models.NewPlayerPool(records)
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect([]string{"a", "b", "c"}, nil, 0)
	assert.Equal(t, ConfidenceLow, report.Confidence)
	require.Len(t, report.Candidates, 1)
	assert.Equal(t, models.CategoryThreePM, report.Candidates[0].Category)
	assert.Equal(t, ConfidenceMedium, report.Candidates[0].Confidence)
	// A lone medium stays a tentative read, never an active strategy.
	assert.False(t, report.Active())
	assert.Empty(t, report.PuntedCategories())
}

func TestDetectPercentagePuntFromPlayerShare(t *testing.T) {
	// Five of six players hurt FT% individually while the team total stays
	// above the absolute cutoff; only the player-share rule can fire.
	records := make([]models.PlayerRecord, 0, 6)
	roster := make([]string, 0, 6)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("brick%d", i)
		records = append(records, scorer(id, "C", models.CategoryFTPct, -0.75))
		roster = append(roster, id)
	}
	records = append(records, scorer("pure", "PG", models.CategoryFTPct, 1.5))
	roster = append(roster, "pure")

	pool := models.NewPlayerPool(records)
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect(roster, nil, 0)
	assert.Empty(t, report.Candidates, "share rule needs per-player damage below the cutoff")

	// Deepen the per-player damage past the cutoff while keeping the team
	// total above the absolute rule's threshold.
	for i := range records[:5] {
		records[i].ZFTPct = -1.05
	}
	pool = models.NewPlayerPool(records)
	detector = NewPuntStrategyDetector(pool)

	report = detector.Detect(roster, nil, 0)
	require.Len(t, report.Candidates, 1)
	assert.Equal(t, models.CategoryFTPct, report.Candidates[0].Category)
	assert.Equal(t, ConfidenceMedium, report.Candidates[0].Confidence)
}

func TestDetectConservativeOnBalancedRoster(t *testing.T) {
	records := []models.PlayerRecord{
		{PlayerID: "a", Name: "a", Team: "TST", Position: "PG", ZPoints: 1, ZAssists: 2, ZFTPct: 0.5},
		{PlayerID: "b", Name: "b", Team: "TST", Position: "SF", ZRebounds: 1, ZThreePM: 1, ZFGPct: 0.3},
		{PlayerID: "c", Name: "c", Team: "TST", Position: "C", ZBlocks: 2, ZFGPct: 1, ZRebounds: 1.5},
		{PlayerID: "d", Name: "d", Team: "TST", Position: "SG", ZSteals: 1, ZPoints: 0.8, ZTurnovers: 0.4},
	}
	pool := models.NewPlayerPool(records)
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect([]string{"a", "b", "c", "d"}, nil, 0)
	assert.Equal(t, ConfidenceNone, report.Confidence)
	assert.Empty(t, report.Candidates)
	assert.Equal(t, "No punt strategy detected", report.Message)
}

func TestDetectNeverPuntsOnMildScatter(t *testing.T) {
	// Rosters whose players all sit near neutral are noise, not strategy.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		records := make([]models.PlayerRecord, 8)
		roster := make([]string, 8)
		for i := range records {
			id := fmt.Sprintf("t%dp%d", trial, i)
			records[i] = models.PlayerRecord{
				PlayerID: id, Name: id, Team: "TST", Position: "SF",
				ZPoints:    mild(rng),
				ZRebounds:  mild(rng),
				ZAssists:   mild(rng),
				ZSteals:    mild(rng),
				ZBlocks:    mild(rng),
				ZTurnovers: mild(rng),
				ZFGPct:     mild(rng),
				ZFTPct:     mild(rng),
				ZThreePM:   mild(rng),
			}
			roster[i] = id
		}
		detector := NewPuntStrategyDetector(models.NewPlayerPool(records))

		report := detector.Detect(roster, nil, 0)
		assert.False(t, report.Active(), "trial %d flagged a punt: %+v", trial, report.Candidates)
	}
}

func mild(rng *rand.Rand) float64 {
	return rng.Float64()*0.8 - 0.4
}

func randomPlayer(rng *rand.Rand, id string) models.PlayerRecord {
	z := func() float64 { return rng.Float64()*4 - 2 }
	return models.PlayerRecord{
		PlayerID: id, Name: id, Team: "TST", Position: "SF",
		ZPoints: z(), ZRebounds: z(), ZAssists: z(), ZSteals: z(),
		ZBlocks: z(), ZTurnovers: z(), ZFGPct: z(), ZFTPct: z(), ZThreePM: z(),
	}
}

func TestDetectHighConfidenceNeedsLeagueEvidence(t *testing.T) {
	// Across random leagues of any size, a high-confidence candidate must
	// always rest on bottom-quintile rank and a negative total in a league
	// big enough for relative standings, and a high overall verdict on two
	// such candidates.
	rng := rand.New(rand.NewSource(23))
	thresholds := DefaultThresholds()
	for trial := 0; trial < 50; trial++ {
		numTeams := 4 + rng.Intn(7)
		var records []models.PlayerRecord
		rosters := make(map[int][]string, numTeams)
		for team := 1; team <= numTeams; team++ {
			for p := 0; p < 5; p++ {
				id := fmt.Sprintf("t%d_%d_%d", trial, team, p)
				records = append(records, randomPlayer(rng, id))
				rosters[team] = append(rosters[team], id)
			}
		}
		detector := NewPuntStrategyDetector(models.NewPlayerPool(records))

		report := detector.Detect(rosters[1], rosters, 1)
		highs := 0
		for _, cand := range report.Candidates {
			if cand.Confidence != ConfidenceHigh {
				continue
			}
			highs++
			assert.GreaterOrEqual(t, cand.TotalTeams, thresholds.MinTeamsForRelative,
				"trial %d: high confidence in a %d-team league", trial, cand.TotalTeams)
			assert.GreaterOrEqual(t, float64(cand.Rank), thresholds.BottomQuintile*float64(cand.TotalTeams),
				"trial %d: high confidence at rank %d of %d", trial, cand.Rank, cand.TotalTeams)
			assert.Negative(t, cand.TeamTotal, "trial %d: high confidence on a non-negative total", trial)
		}
		if report.Confidence == ConfidenceHigh {
			assert.GreaterOrEqual(t, highs, 2, "trial %d: overall high without two high candidates", trial)
		}
	}
}

func TestBuildRecommendationsPrefersWorstHighs(t *testing.T) {
	pool, rosters := doubleTankLeague()
	detector := NewPuntStrategyDetector(pool)

	report := detector.Detect(rosters[1], rosters, 1)
	// Tips come from the flagged categories only.
	expected := append([]string{}, puntTips[models.CategoryTurnovers]...)
	expected = append(expected, puntTips[models.CategoryFTPct]...)
	assert.ElementsMatch(t, expected, report.Recommendations)
}
