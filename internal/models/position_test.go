package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		token string
		want  PositionClass
	}{
		{"PG", ClassGuard},
		{"SG", ClassGuard},
		{"Guard", ClassGuard},
		{"SF", ClassForward},
		{"PF", ClassForward},
		{"Forward", ClassForward},
		{"C", ClassCenter},
		{"center", ClassCenter},
		{" pg ", ClassGuard},
		{"??", ClassUnknown},
		{"", ClassUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPosition(tt.token), "token %q", tt.token)
	}
}

func TestSplitPosition(t *testing.T) {
	assert.Equal(t, []string{"Forward", "Center"}, SplitPosition("Forward-Center"))
	assert.Equal(t, []string{"PG", "SG"}, SplitPosition("PG-SG"))
	assert.Equal(t, []string{"C"}, SplitPosition("C"))
	assert.Empty(t, SplitPosition(""))
}

func TestPrimaryPosition(t *testing.T) {
	assert.Equal(t, "PG", PrimaryPosition("PG-SG"))
	assert.Equal(t, "Forward", PrimaryPosition("Forward-Center"))
	assert.Equal(t, "", PrimaryPosition(""))
}

func TestPositionClassesCoversHybrids(t *testing.T) {
	classes := PositionClasses("Forward-Center")
	assert.ElementsMatch(t, []PositionClass{ClassForward, ClassCenter}, classes)

	// Duplicate classes collapse.
	assert.Equal(t, []PositionClass{ClassGuard}, PositionClasses("PG-SG"))
}

func TestPlayerPoolAvailable(t *testing.T) {
	pool := NewPlayerPool([]PlayerRecord{
		{PlayerID: "curry", Name: "Stephen Curry", Position: "PG", TotalZScore: 9.1},
		{PlayerID: "jokic", Name: "Nikola Jokic", Position: "C", TotalZScore: 12.4},
		{PlayerID: "tatum", Name: "Jayson Tatum", Position: "SF", TotalZScore: 8.2},
	})

	assert.Equal(t, 3, pool.Size())
	assert.NotNil(t, pool.Get("curry"))
	assert.Nil(t, pool.Get("nobody"))

	available := pool.Available([]string{"jokic"})
	ids := make([]string, 0, len(available))
	for _, p := range available {
		ids = append(ids, p.PlayerID)
	}
	assert.Equal(t, []string{"curry", "tatum"}, ids)

	records := pool.Lookup([]string{"tatum", "ghost", "curry"})
	assert.Len(t, records, 2)
}

func TestZScoreAccessorCoversAllCategories(t *testing.T) {
	p := PlayerRecord{
		ZPoints: 1, ZRebounds: 2, ZAssists: 3, ZSteals: 4, ZBlocks: 5,
		ZTurnovers: 6, ZFGPct: 7, ZFTPct: 8, ZThreePM: 9,
	}
	want := map[Category]float64{
		CategoryPoints: 1, CategoryRebounds: 2, CategoryAssists: 3,
		CategorySteals: 4, CategoryBlocks: 5, CategoryTurnovers: 6,
		CategoryFGPct: 7, CategoryFTPct: 8, CategoryThreePM: 9,
	}
	for _, c := range Categories {
		assert.Equal(t, want[c], p.ZScore(c), "category %s", c)
	}
}

func TestIsPercentageMatchesPercentageCategories(t *testing.T) {
	pct := map[Category]bool{}
	for _, c := range PercentageCategories {
		pct[c] = true
	}
	for _, c := range Categories {
		assert.Equal(t, pct[c], c.IsPercentage(), "category %s", c)
	}
}
