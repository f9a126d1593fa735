package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
)

func TestGradeForBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{85, "A"},
		{80, "A-"},
		{75, "B+"},
		{70, "B"},
		{55, "C"},
		{40, "D"},
		{35, "D-"},
		{34.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score), "score %.1f", tt.score)
	}
}

func TestOutlookForBands(t *testing.T) {
	assert.Equal(t, "Championship Contender", OutlookFor(85))
	assert.Equal(t, "Playoff Contender", OutlookFor(70))
	assert.Equal(t, "Competitive", OutlookFor(60))
	assert.Equal(t, "Average", OutlookFor(50))
	assert.Equal(t, "Developing", OutlookFor(40))
	assert.Equal(t, "Rebuilding", OutlookFor(10))
}

// completedDraft runs a 4-team, 3-round snake over a 12-player pool and
// returns both for recap assertions.
func completedDraft(t *testing.T) (*models.PlayerPool, *draft.State) {
	t.Helper()

	positions := []string{"PG", "SG", "SF", "PF", "C", "PG", "SF", "C", "SG", "PF", "PG", "C"}
	records := make([]models.PlayerRecord, 0, 12)
	for i := 0; i < 12; i++ {
		z := float64(12 - i)
		records = append(records, models.PlayerRecord{
			PlayerID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1),
			Team: fmt.Sprintf("T%d", i%6), Position: positions[i],
			TotalZScore: z, ZPoints: z / 3, ZRebounds: z / 4, ZAssists: z / 6,
		})
	}
	pool := models.NewPlayerPool(records)

	state, err := draft.NewState(draft.Config{NumTeams: 4, UserDraftSlot: 2, RosterSize: 3})
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		require.NoError(t, state.ApplyPick(fmt.Sprintf("p%d", i+1)))
	}
	require.True(t, state.IsComplete())
	return pool, state
}

func TestGenerateRecapFullDraft(t *testing.T) {
	pool, state := completedDraft(t)
	analytics := NewDraftAnalytics(pool)

	recap := analytics.GenerateRecap(state)

	assert.Equal(t, 2, recap.UserTeamID)
	assert.Equal(t, 4, recap.LeagueStats.Teams)
	assert.Equal(t, 12, recap.LeagueStats.TotalPicks)
	assert.Equal(t, 3, recap.LeagueStats.RoundsCompleted)
	require.Len(t, recap.TeamAnalyses, 4)

	for teamID, team := range recap.TeamAnalyses {
		assert.Equal(t, 3, team.RosterSize, "team %d", teamID)
		assert.GreaterOrEqual(t, team.Projection.FinalScore, 0.0)
		assert.LessOrEqual(t, team.Projection.FinalScore, 100.0)
		assert.Equal(t, GradeFor(team.Projection.FinalScore), team.Projection.Grade)
		assert.Equal(t, OutlookFor(team.Projection.FinalScore), team.Projection.Outlook)
		assert.Len(t, team.Standings, len(models.Categories))
	}

	// User standing is consistent with the projection ordering.
	standing := recap.LeagueInsights.UserStanding
	assert.Equal(t, 4, standing.TotalTeams)
	assert.GreaterOrEqual(t, standing.Rank, 1)
	assert.LessOrEqual(t, standing.Rank, 4)
	assert.InDelta(t, float64(4-standing.Rank+1)/4*100, standing.Percentile, 0.001)

	leaders := recap.LeagueInsights.LeagueLeaders
	assert.GreaterOrEqual(t, leaders.BestScore, leaders.WorstScore)

	// Every category has a leader drawn from the league.
	require.Len(t, recap.LeagueInsights.CategoryLeaders, len(models.Categories))
	for c, leader := range recap.LeagueInsights.CategoryLeaders {
		assert.Contains(t, recap.TeamAnalyses, leader.TeamID, "category %s", c)
	}

	balance := recap.CompetitiveBalance
	assert.GreaterOrEqual(t, balance.BalanceScore, 0.0)
	assert.LessOrEqual(t, balance.BalanceScore, 100.0)
	assert.GreaterOrEqual(t, balance.ScoreSpread, 0.0)
	assert.NotEmpty(t, balance.Competitiveness)

	assert.NotEmpty(t, recap.StrategicInsights.UserRecommendations)
}

func TestGenerateRecapSkipsEmptyTeams(t *testing.T) {
	pool, _ := completedDraft(t)
	analytics := NewDraftAnalytics(pool)

	state, err := draft.NewState(draft.Config{NumTeams: 4, UserDraftSlot: 1, RosterSize: 3})
	require.NoError(t, err)
	// Only two picks made: teams 3 and 4 have no players yet.
	require.NoError(t, state.ApplyPick("p1"))
	require.NoError(t, state.ApplyPick("p2"))

	recap := analytics.GenerateRecap(state)
	assert.Len(t, recap.TeamAnalyses, 2)
	assert.Equal(t, 0, recap.LeagueStats.RoundsCompleted)
}

func TestCompetitiveBalanceIdenticalScoresIsVeryHigh(t *testing.T) {
	// Mirror-image teams project identically, so the spread collapses and
	// balance maxes out.
	records := []models.PlayerRecord{
		scorer("a", "PG", models.CategoryPoints, 2),
		scorer("b", "PG", models.CategoryPoints, 2),
	}
	pool := models.NewPlayerPool(records)
	analytics := NewDraftAnalytics(pool)

	state, err := draft.NewState(draft.Config{NumTeams: 2, UserDraftSlot: 1, RosterSize: 1})
	require.NoError(t, err)
	require.NoError(t, state.ApplyPick("a"))
	require.NoError(t, state.ApplyPick("b"))

	recap := analytics.GenerateRecap(state)
	assert.InDelta(t, 100.0, recap.CompetitiveBalance.BalanceScore, 0.001)
	assert.Equal(t, "Very High", recap.CompetitiveBalance.Competitiveness)
	assert.InDelta(t, 0.0, recap.CompetitiveBalance.ScoreSpread, 0.001)
}
