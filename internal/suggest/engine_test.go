package suggest

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/models"
)

func adp(v float64) *float64 { return &v }

// testPool builds a 14-player pool with descending composite ratings and
// a mix of positions.
func testPool() *models.PlayerPool {
	positions := []string{"C", "PG", "SF", "PF", "SG", "PG-SG", "C", "SF", "PG", "PF-C", "SG", "SF", "C", "PG"}
	records := make([]models.PlayerRecord, 0, len(positions))
	for i, pos := range positions {
		z := 13.0 - float64(i)
		records = append(records, models.PlayerRecord{
			PlayerID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1),
			Team: fmt.Sprintf("T%d", i%5), Position: pos,
			TotalZScore: z,
			ZPoints:     z / 4, ZRebounds: z / 5, ZAssists: z / 6,
			ADP: adp(float64(i + 1)),
		})
	}
	return models.NewPlayerPool(records)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func baseRequest(pool *models.PlayerPool) Request {
	return Request{
		Available:      pool.All(),
		UserRoster:     nil,
		Round:          1,
		DraftSlot:      1,
		NumTeams:       10,
		PicksUntilNext: 18,
	}
}

func TestGetSuggestionsReturnsAtMostFive(t *testing.T) {
	pool := testPool()
	engine := NewEngine(pool, testLogger())

	suggestions := engine.GetSuggestions(baseRequest(pool))
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 5)
}

func TestGetSuggestionsIsDeterministic(t *testing.T) {
	pool := testPool()
	engine := NewEngine(pool, testLogger())
	req := baseRequest(pool)

	first := engine.GetSuggestions(req)
	second := engine.GetSuggestions(req)
	assert.Equal(t, first, second)
}

func TestGetSuggestionsSortedByScore(t *testing.T) {
	pool := testPool()
	engine := NewEngine(pool, testLogger())

	suggestions := engine.GetSuggestions(baseRequest(pool))
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].PriorityScore, suggestions[i].PriorityScore)
	}
	for _, s := range suggestions {
		assert.NotEmpty(t, s.MainReason)
		assert.LessOrEqual(t, len(s.AdditionalReasons), 2)
	}
}

func TestGetSuggestionsEmptyPool(t *testing.T) {
	pool := testPool()
	engine := NewEngine(pool, testLogger())

	req := baseRequest(pool)
	req.Available = nil
	assert.Empty(t, engine.GetSuggestions(req))
}

func TestADPValueSignalScenario(t *testing.T) {
	// Round 2, pick 5 of a 10-team draft puts the user at overall pick 15.
	// A player with ADP 40 is a 25-pick value.
	records := []models.PlayerRecord{
		{PlayerID: "value", Name: "Value Pick", Position: "SF", TotalZScore: 6, ADP: adp(40)},
		{PlayerID: "other", Name: "Other", Position: "C", TotalZScore: 5.5, ADP: adp(14)},
	}
	pool := models.NewPlayerPool(records)
	engine := NewEngine(pool, testLogger())

	suggestions := engine.GetSuggestions(Request{
		Available:      pool.All(),
		Round:          2,
		DraftSlot:      5,
		NumTeams:       10,
		PicksUntilNext: 4,
	})
	require.NotEmpty(t, suggestions)

	var valueHit *Suggestion
	for i := range suggestions {
		if suggestions[i].PlayerID == "value" {
			valueHit = &suggestions[i]
		}
	}
	require.NotNil(t, valueHit)

	reasons := append([]string{valueHit.MainReason}, valueHit.AdditionalReasons...)
	assert.Contains(t, reasons, "Excellent value - typically drafted 25 picks later")
}

func TestCategoryNeedSignalSurfacesWeaknesses(t *testing.T) {
	// The roster is all playmaking and no rebounding; a strong rebounder
	// should get a need-driven reason.
	records := []models.PlayerRecord{
		{PlayerID: "guard1", Name: "Guard 1", Position: "PG", TotalZScore: 8, ZAssists: 3, ZRebounds: -1.5},
		{PlayerID: "guard2", Name: "Guard 2", Position: "SG", TotalZScore: 7, ZAssists: 2.5, ZRebounds: -1.2},
		{PlayerID: "big", Name: "Big Man", Position: "C", TotalZScore: 6, ZRebounds: 2.5, ZFGPct: 1.2},
		{PlayerID: "wing", Name: "Wing", Position: "SF", TotalZScore: 5, ZPoints: 1.5, ZRebounds: 0.2},
	}
	pool := models.NewPlayerPool(records)
	engine := NewEngine(pool, testLogger())

	suggestions := engine.GetSuggestions(Request{
		Available:      pool.Available([]string{"guard1", "guard2"}),
		UserRoster:     []string{"guard1", "guard2"},
		Round:          3,
		DraftSlot:      1,
		NumTeams:       2,
		PicksUntilNext: 3,
	})
	require.NotEmpty(t, suggestions)

	var big *Suggestion
	for i := range suggestions {
		if suggestions[i].PlayerID == "big" {
			big = &suggestions[i]
		}
	}
	require.NotNil(t, big)

	reasons := append([]string{big.MainReason}, big.AdditionalReasons...)
	found := false
	for _, r := range reasons {
		if r == "Addresses team weaknesses: REB" {
			found = true
		}
	}
	assert.True(t, found, "expected a weakness reason, got %v", reasons)
}

func TestMainReasonIsFirstFiredSignal(t *testing.T) {
	pool := testPool()
	engine := NewEngine(pool, testLogger())

	suggestions := engine.GetSuggestions(baseRequest(pool))
	for _, s := range suggestions {
		assert.NotContains(t, s.AdditionalReasons, s.MainReason)
	}
}

func TestCandidatePoolIsBounded(t *testing.T) {
	// Player 11 and beyond are outside the scored candidate pool even if
	// they would score well.
	pool := testPool()
	engine := NewEngine(pool, testLogger())

	suggestions := engine.GetSuggestions(baseRequest(pool))
	for _, s := range suggestions {
		for i := 11; i <= 14; i++ {
			assert.NotEqual(t, fmt.Sprintf("p%d", i), s.PlayerID)
		}
	}
}
