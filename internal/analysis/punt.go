package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thelineup/draft-engine/internal/models"
)

// Confidence grades how certain the detector is that a weakness is a
// deliberate punt rather than noise.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// PuntCandidate is one category flagged as a likely punt.
type PuntCandidate struct {
	Category   models.Category `json:"category"`
	Name       string          `json:"name"`
	Short      string          `json:"short"`
	Confidence Confidence      `json:"confidence"`
	Reason     string          `json:"reason"`
	TeamTotal  float64         `json:"team_total"`
	Rank       int             `json:"rank,omitempty"`
	TotalTeams int             `json:"total_teams,omitempty"`
}

// PuntReport aggregates punt detection for a roster.
type PuntReport struct {
	Confidence      Confidence      `json:"strategy_confidence"`
	Candidates      []PuntCandidate `json:"punt_categories"`
	Message         string          `json:"message"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

// Active reports whether the detection is solid enough for downstream
// logic (suggestion filtering) to act on.
func (r PuntReport) Active() bool {
	return r.Confidence == ConfidenceHigh || r.Confidence == ConfidenceMedium
}

// PuntedCategories returns the set of categories flagged with high or
// medium confidence when the overall strategy is active.
func (r PuntReport) PuntedCategories() map[models.Category]bool {
	punted := make(map[models.Category]bool)
	if !r.Active() {
		return punted
	}
	for _, cand := range r.Candidates {
		if cand.Confidence == ConfidenceHigh || cand.Confidence == ConfidenceMedium {
			punted[cand.Category] = true
		}
	}
	return punted
}

// puntTips are the static strategy tips per punted category.
var puntTips = map[models.Category][]string{
	models.CategoryPoints: {
		"Target defensive specialists and playmakers who contribute everywhere else",
		"Low-usage bigs with elite rebounding and blocks fit this build",
	},
	models.CategoryRebounds: {
		"Lean into guard-heavy builds with assists, steals, and threes",
		"Avoid spending mid-round picks on centers who only rebound",
	},
	models.CategoryAssists: {
		"Load up on wings and bigs; ignore pure point guards",
		"Prioritize scoring forwards who add blocks and boards",
	},
	models.CategorySteals: {
		"Draft bigs freely; steals rarely come from centers anyway",
		"Use the freedom to chase percentages and blocks",
	},
	models.CategoryBlocks: {
		"Guard-heavy rosters win assists, steals, and FT% instead",
		"Skip shot-blocking specialists with thin counting stats",
	},
	models.CategoryTurnovers: {
		"High-usage stars come at a discount when you ignore turnovers",
		"Stack ball-dominant creators other managers shy away from",
		"Pair them with efficient finishers to hold the percentages",
	},
	models.CategoryFGPct: {
		"Volume three-point shooters become undervalued targets",
		"Guards who fill points, threes, and FT% fit this build",
	},
	models.CategoryFTPct: {
		"High-volume bigs with poor stripes become bargains",
		"Target elite FG%, rebounds, and blocks to dominate big-man categories",
		"Avoid rostering more than one additional poor free-throw shooter",
	},
	models.CategoryThreePM: {
		"Old-school bigs give you percentages, boards, and blocks cheap",
		"Punting threes pairs naturally with strong FG% builds",
	},
}

// PuntStrategyDetector classifies structural category weaknesses as
// deliberate punts. It is deliberately conservative: small-sample rosters
// produce false positives, so the detector biases toward none/low unless
// the evidence is strong.
type PuntStrategyDetector struct {
	pool       *models.PlayerPool
	analyzer   *CategoryAnalyzer
	thresholds Thresholds
}

// NewPuntStrategyDetector creates a detector with default thresholds.
func NewPuntStrategyDetector(pool *models.PlayerPool) *PuntStrategyDetector {
	return &PuntStrategyDetector{
		pool:       pool,
		analyzer:   NewCategoryAnalyzer(pool),
		thresholds: DefaultThresholds(),
	}
}

// Detect evaluates every category for punt evidence and aggregates an
// overall confidence. Below the minimum-player threshold no determination
// is made.
func (d *PuntStrategyDetector) Detect(roster []string, allRosters map[int][]string, teamID int) PuntReport {
	players := d.pool.Lookup(roster)
	if len(players) < d.thresholds.MinPlayersForPunt {
		return PuntReport{
			Confidence: ConfidenceNone,
			Candidates: []PuntCandidate{},
			Message:    "Not enough players drafted to evaluate punt strategies",
		}
	}

	standings := d.analyzer.Analyze(roster, allRosters, teamID)
	hasLeague := len(allRosters) > 0 && teamID > 0

	candidates := make([]PuntCandidate, 0, 4)
	for _, c := range models.Categories {
		standing := standings[c]
		if cand, ok := d.evaluateCategory(c, standing, players, hasLeague); ok {
			candidates = append(candidates, cand)
		}
	}

	report := PuntReport{
		Confidence: aggregateConfidence(candidates),
		Candidates: candidates,
	}
	report.Message = d.buildMessage(report)
	report.Recommendations = d.buildRecommendations(candidates)
	return report
}

// evaluateCategory applies the detection rules in priority order; the
// first rule that fires wins.
func (d *PuntStrategyDetector) evaluateCategory(c models.Category, standing Standing, players []*models.PlayerRecord, hasLeague bool) (PuntCandidate, bool) {
	t := d.thresholds
	cand := PuntCandidate{
		Category:   c,
		Name:       c.Name(),
		Short:      c.Short(),
		TeamTotal:  standing.TeamTotal,
		Rank:       standing.Rank,
		TotalTeams: standing.TotalTeams,
	}

	// Rule 1: league-relative evidence, only meaningful with enough teams.
	if hasLeague && standing.TotalTeams >= t.MinTeamsForRelative {
		if float64(standing.Rank) >= t.BottomQuintile*float64(standing.TotalTeams) && standing.TeamTotal < 0 {
			cand.Confidence = ConfidenceHigh
			cand.Reason = fmt.Sprintf("Ranked %d of %d with a negative total (%.1f)",
				standing.Rank, standing.TotalTeams, standing.TeamTotal)
			return cand, true
		}
		if standing.Rank == standing.TotalTeams && standing.TeamTotal < t.LastPlaceTotalCeiling {
			cand.Confidence = ConfidenceMedium
			cand.Reason = fmt.Sprintf("Last place with a total of %.1f", standing.TeamTotal)
			return cand, true
		}
	} else if standing.TeamTotal < t.AbsolutePuntTotal {
		// Rule 2: absolute evidence without league context.
		cand.Confidence = ConfidenceMedium
		cand.Reason = fmt.Sprintf("Team total of %.1f is far below neutral", standing.TeamTotal)
		return cand, true
	}

	// Rule 3: percentage categories sink on player-level evidence.
	if c.IsPercentage() && len(players) >= t.PctPuntMinRoster {
		below := 0
		for _, p := range players {
			if p.ZScore(c) < t.PctPuntPlayerScore {
				below++
			}
		}
		if float64(below) >= t.PctPuntPlayerShare*float64(len(players)) {
			cand.Confidence = ConfidenceMedium
			cand.Reason = fmt.Sprintf("%d of %d rostered players hurt %s badly", below, len(players), c.Short())
			return cand, true
		}
	}

	return PuntCandidate{}, false
}

// aggregateConfidence folds per-category confidences into an overall
// verdict: two independent high signals make a high-confidence strategy,
// a single high makes medium, anything else caps at low.
func aggregateConfidence(candidates []PuntCandidate) Confidence {
	high, medium := 0, 0
	for _, cand := range candidates {
		switch cand.Confidence {
		case ConfidenceHigh:
			high++
		case ConfidenceMedium:
			medium++
		}
	}
	switch {
	case high >= 2:
		return ConfidenceHigh
	case high >= 1:
		return ConfidenceMedium
	case medium >= 1 || high+medium > 0:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

func (d *PuntStrategyDetector) buildMessage(report PuntReport) string {
	if len(report.Candidates) == 0 {
		return "No punt strategy detected"
	}
	shorts := make([]string, 0, len(report.Candidates))
	for _, cand := range report.Candidates {
		shorts = append(shorts, cand.Short)
	}
	switch report.Confidence {
	case ConfidenceHigh:
		return fmt.Sprintf("Clear punt strategy detected: conceding %s", strings.Join(shorts, ", "))
	case ConfidenceMedium:
		return fmt.Sprintf("Likely punt strategy: %s trending toward a punt", strings.Join(shorts, ", "))
	default:
		return fmt.Sprintf("Possible weakness in %s, too early to call a punt", strings.Join(shorts, ", "))
	}
}

// buildRecommendations emits tips for the top two high-confidence punts,
// or the single strongest medium candidate when no high exists.
func (d *PuntStrategyDetector) buildRecommendations(candidates []PuntCandidate) []string {
	highs := make([]PuntCandidate, 0, len(candidates))
	mediums := make([]PuntCandidate, 0, len(candidates))
	for _, cand := range candidates {
		switch cand.Confidence {
		case ConfidenceHigh:
			highs = append(highs, cand)
		case ConfidenceMedium:
			mediums = append(mediums, cand)
		}
	}

	// Worst totals first.
	byTotal := func(cands []PuntCandidate) {
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].TeamTotal < cands[j].TeamTotal })
	}

	var selected []PuntCandidate
	if len(highs) > 0 {
		byTotal(highs)
		if len(highs) > 2 {
			highs = highs[:2]
		}
		selected = highs
	} else if len(mediums) > 0 {
		byTotal(mediums)
		selected = mediums[:1]
	}

	var tips []string
	for _, cand := range selected {
		tips = append(tips, puntTips[cand.Category]...)
	}
	return tips
}
