package suggest

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/analysis"
	"github.com/thelineup/draft-engine/internal/models"
)

// Suggestion is one recommended pick with its score and reasoning.
type Suggestion struct {
	PlayerID          string   `json:"player_id"`
	PlayerName        string   `json:"player_name"`
	Position          string   `json:"position"`
	ZScore            float64  `json:"z_score"`
	ADP               *float64 `json:"adp,omitempty"`
	PriorityScore     float64  `json:"priority_score"`
	MainReason        string   `json:"main_reason"`
	AdditionalReasons []string `json:"additional_reasons"`
}

// Request bundles the inputs to a suggestion run.
type Request struct {
	Available  []models.PlayerRecord
	UserRoster []string
	Round      int
	DraftSlot  int
	NumTeams   int

	// AllRosters and UserTeamID enable league-relative weakness and punt
	// analysis; both may be zero for single-team mode.
	AllRosters map[int][]string
	UserTeamID int

	// PicksUntilNext is how many picks pass before the user's next turn.
	PicksUntilNext int
}

// Engine produces ranked, explained pick suggestions. Every signal is an
// independent pure function; the engine sums points and collects reasons,
// so each heuristic stays auditable on its own.
type Engine struct {
	pool     *models.PlayerPool
	analyzer *analysis.CategoryAnalyzer
	punt     *analysis.PuntStrategyDetector
	weights  Weights
	logger   *logrus.Logger
}

// NewEngine creates a suggestion engine over the player pool with default
// weights.
func NewEngine(pool *models.PlayerPool, logger *logrus.Logger) *Engine {
	return &Engine{
		pool:     pool,
		analyzer: analysis.NewCategoryAnalyzer(pool),
		punt:     analysis.NewPuntStrategyDetector(pool),
		weights:  DefaultWeights(),
		logger:   logger,
	}
}

// GetSuggestions scores the top available candidates and returns up to
// five, ranked by priority score. Deterministic: identical inputs produce
// an identical ordered list.
func (e *Engine) GetSuggestions(req Request) []Suggestion {
	if len(req.Available) == 0 {
		return []Suggestion{}
	}

	// Rank candidates by composite rating; only the head of the list is
	// ever surfaced as a primary suggestion.
	ranked := make([]models.PlayerRecord, len(req.Available))
	copy(ranked, req.Available)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalZScore > ranked[j].TotalZScore
	})
	if len(ranked) > e.weights.CandidatePool {
		ranked = ranked[:e.weights.CandidatePool]
	}

	puntReport := e.punt.Detect(req.UserRoster, req.AllRosters, req.UserTeamID)
	weak := e.nonPuntedWeaknesses(req, puntReport)
	roster := e.pool.Lookup(req.UserRoster)

	suggestions := make([]Suggestion, 0, len(ranked))
	for i := range ranked {
		ctx := &signalContext{
			candidate:      &ranked[i],
			index:          i,
			ranked:         ranked,
			available:      req.Available,
			roster:         roster,
			weakCategories: weak,
			punt:           puntReport,
			round:          req.Round,
			draftSlot:      req.DraftSlot,
			numTeams:       req.NumTeams,
			picksUntilNext: req.PicksUntilNext,
		}

		score := 0.0
		var reasons []string
		for _, sig := range signals {
			points, sigReasons := sig(e.weights, ctx)
			score += points
			reasons = append(reasons, sigReasons...)
		}

		// A candidate no signal fired on has nothing to recommend it.
		if len(reasons) == 0 {
			continue
		}

		suggestion := Suggestion{
			PlayerID:      ranked[i].PlayerID,
			PlayerName:    ranked[i].Name,
			Position:      ranked[i].Position,
			ZScore:        ranked[i].TotalZScore,
			ADP:           ranked[i].ADP,
			PriorityScore: score,
			MainReason:    reasons[0],
		}
		if len(reasons) > 3 {
			reasons = reasons[:3]
		}
		suggestion.AdditionalReasons = reasons[1:]
		suggestions = append(suggestions, suggestion)
	}

	// Stable sort keeps composite-rating order among ties.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].PriorityScore > suggestions[j].PriorityScore
	})
	if len(suggestions) > e.weights.MaxSuggestions {
		suggestions = suggestions[:e.weights.MaxSuggestions]
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"round":       req.Round,
			"candidates":  len(ranked),
			"suggestions": len(suggestions),
			"punt_active": puntReport.Active(),
		}).Debug("Generated pick suggestions")
	}
	return suggestions
}

// nonPuntedWeaknesses returns the user's weak categories minus anything
// the active punt strategy has written off.
func (e *Engine) nonPuntedWeaknesses(req Request, punt analysis.PuntReport) []models.Category {
	weak := e.analyzer.PriorityNeeds(req.UserRoster, req.AllRosters, req.UserTeamID)
	punted := punt.PuntedCategories()
	if len(punted) == 0 {
		return weak
	}
	filtered := weak[:0]
	for _, c := range weak {
		if !punted[c] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
