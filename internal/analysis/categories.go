package analysis

import (
	"sort"

	"github.com/thelineup/draft-engine/internal/models"
)

// Status is a team's standing in one category.
type Status string

const (
	StatusStrong  Status = "strong"
	StatusAverage Status = "average"
	StatusWeak    Status = "weak"
)

// Standing describes one team's position in one category. Rank is 1-based
// among teams with at least one player; it is 0 when no league context was
// supplied.
type Standing struct {
	Category   models.Category `json:"category"`
	Name       string          `json:"name"`
	Short      string          `json:"short"`
	TeamTotal  float64         `json:"team_total"`
	TeamAvg    float64         `json:"team_avg"`
	Status     Status          `json:"status"`
	Rank       int             `json:"rank,omitempty"`
	TotalTeams int             `json:"total_teams"`
}

// CategoryAnalyzer computes per-category standings for a roster, either
// relative to the rest of the league or against absolute thresholds when
// no league context is available.
type CategoryAnalyzer struct {
	pool       *models.PlayerPool
	thresholds Thresholds
}

// NewCategoryAnalyzer creates an analyzer over the given player pool with
// default thresholds.
func NewCategoryAnalyzer(pool *models.PlayerPool) *CategoryAnalyzer {
	return &CategoryAnalyzer{pool: pool, thresholds: DefaultThresholds()}
}

// categoryTotal sums a roster's z-scores in one category. Turnovers need
// no special casing: the loader normalized the sign so higher is better
// across all nine categories.
func (a *CategoryAnalyzer) categoryTotal(roster []string, c models.Category) (total float64, count int) {
	for _, rec := range a.pool.Lookup(roster) {
		total += rec.ZScore(c)
		count++
	}
	return total, count
}

// teamRank holds one category's league ranking.
type teamRank struct {
	ranks      map[int]int
	totalTeams int
}

// rankTeams dense-ranks teams with at least one rostered player by
// category total, best first. Ties share a rank.
func (a *CategoryAnalyzer) rankTeams(allRosters map[int][]string, c models.Category) teamRank {
	type teamTotal struct {
		teamID int
		total  float64
	}

	totals := make([]teamTotal, 0, len(allRosters))
	for teamID, roster := range allRosters {
		if total, count := a.categoryTotal(roster, c); count > 0 {
			totals = append(totals, teamTotal{teamID: teamID, total: total})
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].total != totals[j].total {
			return totals[i].total > totals[j].total
		}
		return totals[i].teamID < totals[j].teamID
	})

	ranks := make(map[int]int, len(totals))
	rank := 0
	for i, tt := range totals {
		if i == 0 || tt.total != totals[i-1].total {
			rank++
		}
		ranks[tt.teamID] = rank
	}
	return teamRank{ranks: ranks, totalTeams: len(totals)}
}

// statusFromRank classifies a rank percentile: top third strong, bottom
// third weak.
func (a *CategoryAnalyzer) statusFromRank(rank, totalTeams int) Status {
	if rank == 0 || totalTeams <= 1 {
		return StatusAverage
	}
	percentile := float64(totalTeams-rank+1) / float64(totalTeams)
	switch {
	case percentile >= a.thresholds.StrongPercentile:
		return StatusStrong
	case percentile >= a.thresholds.WeakPercentile:
		return StatusAverage
	default:
		return StatusWeak
	}
}

// statusFromTotal is the single-team fallback using absolute totals.
// Turnovers get a lower strong bar: post-flip turnover z-scores cluster
// tighter around zero than the counting categories.
func (a *CategoryAnalyzer) statusFromTotal(c models.Category, total float64) Status {
	strong := a.thresholds.StrongTotal
	if c == models.CategoryTurnovers {
		strong = a.thresholds.StrongTotalTurnovers
	}
	switch {
	case total >= strong:
		return StatusStrong
	case total >= a.thresholds.AverageTotal:
		return StatusAverage
	default:
		return StatusWeak
	}
}

// Analyze computes the team's standing in all nine categories. When
// allRosters and teamID supply league context the standing is relative
// (rank percentile among teams with players); otherwise absolute
// thresholds apply. An empty roster yields neutral average standings.
func (a *CategoryAnalyzer) Analyze(roster []string, allRosters map[int][]string, teamID int) map[models.Category]Standing {
	standings := make(map[models.Category]Standing, len(models.Categories))

	if len(a.pool.Lookup(roster)) == 0 {
		for _, c := range models.Categories {
			standings[c] = Standing{
				Category:   c,
				Name:       c.Name(),
				Short:      c.Short(),
				Status:     StatusAverage,
				TotalTeams: 1,
			}
		}
		return standings
	}

	useLeague := len(allRosters) > 0 && teamID > 0

	for _, c := range models.Categories {
		total, count := a.categoryTotal(roster, c)
		standing := Standing{
			Category:   c,
			Name:       c.Name(),
			Short:      c.Short(),
			TeamTotal:  total,
			TotalTeams: 1,
		}
		if count > 0 {
			standing.TeamAvg = total / float64(count)
		}

		if useLeague {
			ranking := a.rankTeams(allRosters, c)
			standing.Rank = ranking.ranks[teamID]
			standing.TotalTeams = ranking.totalTeams
			standing.Status = a.statusFromRank(standing.Rank, standing.TotalTeams)
		} else {
			standing.Status = a.statusFromTotal(c, total)
		}

		standings[c] = standing
	}
	return standings
}

// PriorityNeeds returns the categories the team is weak in, in canonical
// category order.
func (a *CategoryAnalyzer) PriorityNeeds(roster []string, allRosters map[int][]string, teamID int) []models.Category {
	standings := a.Analyze(roster, allRosters, teamID)
	weak := make([]models.Category, 0, len(models.Categories))
	for _, c := range models.Categories {
		if standings[c].Status == StatusWeak {
			weak = append(weak, c)
		}
	}
	return weak
}
