package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
)

// TeamProjection is a team's post-draft outlook with the component scores
// that produced it, kept for explainability.
type TeamProjection struct {
	FinalScore          float64 `json:"final_score"`
	Grade               string  `json:"grade"`
	Outlook             string  `json:"outlook"`
	CategoryScore       float64 `json:"category_score"`
	PuntBonus           float64 `json:"punt_bonus"`
	BalanceBonus        float64 `json:"balance_bonus"`
	ConstructionPenalty float64 `json:"construction_penalty"`
}

// TeamAnalysis bundles everything computed for one team in the recap.
type TeamAnalysis struct {
	TeamID      int                          `json:"team_id"`
	RosterSize  int                          `json:"roster_size"`
	TotalZScore float64                      `json:"total_z_score"`
	Standings   map[models.Category]Standing `json:"category_analysis"`
	Punt        PuntReport                   `json:"punt_analysis"`
	Risk        RiskReport                   `json:"risk_analysis"`
	Projection  TeamProjection               `json:"team_projection"`
	StrongCount int                          `json:"strong_count"`
	WeakCount   int                          `json:"weak_count"`
}

// UserStanding places the user's team in the league.
type UserStanding struct {
	Rank       int     `json:"rank"`
	TotalTeams int     `json:"total_teams"`
	Percentile float64 `json:"percentile"`
}

// LeagueLeaders names the best and worst projected teams.
type LeagueLeaders struct {
	BestTeam   int     `json:"best_team"`
	BestScore  float64 `json:"best_score"`
	WorstTeam  int     `json:"worst_team"`
	WorstScore float64 `json:"worst_score"`
}

// CategoryLeader is the team on top of one category.
type CategoryLeader struct {
	TeamID       int     `json:"team_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

// LeagueAverages are league-wide means.
type LeagueAverages struct {
	TotalZScore        float64 `json:"total_z_score"`
	AvgZScorePerPlayer float64 `json:"avg_z_score_per_player"`
	ProjectionScore    float64 `json:"projection_score"`
}

// LeagueInsights aggregate league-level findings.
type LeagueInsights struct {
	UserStanding    UserStanding                       `json:"user_standing"`
	LeagueLeaders   LeagueLeaders                      `json:"league_leaders"`
	CategoryLeaders map[models.Category]CategoryLeader `json:"category_leaders"`
	LeagueAverages  LeagueAverages                     `json:"league_averages"`
}

// CompetitiveBalance measures how tightly the league is packed.
type CompetitiveBalance struct {
	BalanceScore    float64 `json:"balance_score"`
	Competitiveness string  `json:"competitiveness"`
	ScoreSpread     float64 `json:"score_spread"`
	StdDeviation    float64 `json:"std_deviation"`
}

// StrategicInsights surfaces league-wide draft trends. Only trends backed
// by at least two teams are reported, to keep noise out.
type StrategicInsights struct {
	DraftTrends           []string `json:"draft_trends"`
	StrategicObservations []string `json:"strategic_observations"`
	UserRecommendations   []string `json:"user_recommendations"`
}

// LeagueStats are the headline counters of the draft.
type LeagueStats struct {
	Teams           int `json:"teams"`
	TotalPicks      int `json:"total_picks"`
	RoundsCompleted int `json:"rounds_completed"`
}

// Recap is the full post-draft analytics payload.
type Recap struct {
	TeamAnalyses       map[int]TeamAnalysis `json:"team_analyses"`
	LeagueStats        LeagueStats          `json:"league_stats"`
	LeagueInsights     LeagueInsights       `json:"league_insights"`
	CompetitiveBalance CompetitiveBalance   `json:"competitive_balance"`
	StrategicInsights  StrategicInsights    `json:"strategic_insights"`
	UserTeamID         int                  `json:"user_team_id"`
}

// DraftAnalytics produces the post-draft recap over a completed draft.
type DraftAnalytics struct {
	pool     *models.PlayerPool
	analyzer *CategoryAnalyzer
	punt     *PuntStrategyDetector
	risk     *RosterRiskAnalyzer
	weights  ProjectionWeights
}

// NewDraftAnalytics creates the recap engine with default weights.
func NewDraftAnalytics(pool *models.PlayerPool) *DraftAnalytics {
	return &DraftAnalytics{
		pool:     pool,
		analyzer: NewCategoryAnalyzer(pool),
		punt:     NewPuntStrategyDetector(pool),
		risk:     NewRosterRiskAnalyzer(pool),
		weights:  DefaultProjectionWeights(),
	}
}

// GenerateRecap analyzes every team with at least one player and computes
// league-wide standings, balance, and strategic trends.
func (da *DraftAnalytics) GenerateRecap(state *draft.State) Recap {
	teamAnalyses := make(map[int]TeamAnalysis)

	for teamID, roster := range state.TeamRosters {
		if len(roster) == 0 {
			continue
		}
		teamAnalyses[teamID] = da.analyzeTeam(teamID, roster, state.TeamRosters)
	}

	recap := Recap{
		TeamAnalyses: teamAnalyses,
		UserTeamID:   state.UserTeamID(),
		LeagueStats: LeagueStats{
			Teams:           state.Config.NumTeams,
			TotalPicks:      len(state.DraftedPlayers),
			RoundsCompleted: len(state.DraftedPlayers) / state.Config.NumTeams,
		},
	}
	recap.LeagueInsights = da.leagueInsights(teamAnalyses, state)
	recap.CompetitiveBalance = da.competitiveBalance(teamAnalyses)
	recap.StrategicInsights = da.strategicInsights(teamAnalyses, state.UserTeamID())
	return recap
}

func (da *DraftAnalytics) analyzeTeam(teamID int, roster []string, allRosters map[int][]string) TeamAnalysis {
	standings := da.analyzer.Analyze(roster, allRosters, teamID)
	punt := da.punt.Detect(roster, allRosters, teamID)
	risk := da.risk.Analyze(roster)

	strong, weak := 0, 0
	totalZ := 0.0
	for _, standing := range standings {
		switch standing.Status {
		case StatusStrong:
			strong++
		case StatusWeak:
			weak++
		}
	}
	for _, rec := range da.pool.Lookup(roster) {
		totalZ += rec.TotalZScore
	}

	return TeamAnalysis{
		TeamID:      teamID,
		RosterSize:  len(roster),
		TotalZScore: totalZ,
		Standings:   standings,
		Punt:        punt,
		Risk:        risk,
		Projection:  da.project(strong, weak, punt, risk),
		StrongCount: strong,
		WeakCount:   weak,
	}
}

// project folds a team's analysis into a 0-100 score, grade, and outlook.
func (da *DraftAnalytics) project(strong, weak int, punt PuntReport, risk RiskReport) TeamProjection {
	w := da.weights
	average := len(models.Categories) - strong - weak

	categoryScore := float64(strong)*w.StrongCategory + float64(average)*w.AverageCategory

	puntBonus := 0.0
	switch punt.Confidence {
	case ConfidenceHigh:
		puntBonus = w.PuntBonusHigh
	case ConfidenceMedium:
		puntBonus = w.PuntBonusMedium
	}

	balanceBonus := 0.0
	switch {
	case strong >= 7:
		balanceBonus = w.StrongTeamCount7
	case strong >= 5:
		balanceBonus = w.StrongTeamCount5
	case strong >= 3:
		balanceBonus = w.StrongTeamCount3
	}

	penalty := 0.0
	switch risk.RiskLevel {
	case RiskHigh:
		penalty = w.RiskPenaltyHigh
	case RiskMedium:
		penalty = w.RiskPenaltyMedium
	case RiskLow:
		penalty = w.RiskPenaltyLow
	}
	switch {
	case weak >= 6:
		penalty += w.WeakPenalty6
	case weak >= 4:
		penalty += w.WeakPenalty4
	}

	score := w.Base + categoryScore + puntBonus + balanceBonus - penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return TeamProjection{
		FinalScore:          score,
		Grade:               GradeFor(score),
		Outlook:             OutlookFor(score),
		CategoryScore:       categoryScore,
		PuntBonus:           puntBonus,
		BalanceBonus:        balanceBonus,
		ConstructionPenalty: penalty,
	}
}

// GradeFor maps a projection score to its letter grade.
func GradeFor(score float64) string {
	for _, band := range GradeBands {
		if score >= band.Min {
			return band.Grade
		}
	}
	return "F"
}

// OutlookFor maps a projection score to its qualitative outlook.
func OutlookFor(score float64) string {
	for _, band := range OutlookBands {
		if score >= band.Min {
			return band.Outlook
		}
	}
	return "Rebuilding"
}

func (da *DraftAnalytics) leagueInsights(teams map[int]TeamAnalysis, state *draft.State) LeagueInsights {
	insights := LeagueInsights{
		CategoryLeaders: make(map[models.Category]CategoryLeader),
	}
	if len(teams) == 0 {
		return insights
	}

	type ranked struct {
		teamID int
		score  float64
	}
	order := make([]ranked, 0, len(teams))
	totalZ, totalPlayers, totalProjection := 0.0, 0, 0.0
	for id, team := range teams {
		order = append(order, ranked{teamID: id, score: team.Projection.FinalScore})
		totalZ += team.TotalZScore
		totalPlayers += team.RosterSize
		totalProjection += team.Projection.FinalScore
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return order[i].teamID < order[j].teamID
	})

	insights.LeagueLeaders = LeagueLeaders{
		BestTeam:   order[0].teamID,
		BestScore:  order[0].score,
		WorstTeam:  order[len(order)-1].teamID,
		WorstScore: order[len(order)-1].score,
	}

	for rank, entry := range order {
		if entry.teamID == state.UserTeamID() {
			insights.UserStanding = UserStanding{
				Rank:       rank + 1,
				TotalTeams: len(order),
				Percentile: float64(len(order)-rank) / float64(len(order)) * 100,
			}
			break
		}
	}

	insights.LeagueAverages = LeagueAverages{
		TotalZScore:     totalZ / float64(len(teams)),
		ProjectionScore: totalProjection / float64(len(teams)),
	}
	if totalPlayers > 0 {
		insights.LeagueAverages.AvgZScorePerPlayer = totalZ / float64(totalPlayers)
	}

	for _, c := range models.Categories {
		var leader CategoryLeader
		first := true
		for id, team := range teams {
			total := team.Standings[c].TeamTotal
			if first || total > leader.Total || (total == leader.Total && id < leader.TeamID) {
				leader = CategoryLeader{TeamID: id, CategoryName: c.Name(), Total: total}
				first = false
			}
		}
		insights.CategoryLeaders[c] = leader
	}
	return insights
}

func (da *DraftAnalytics) competitiveBalance(teams map[int]TeamAnalysis) CompetitiveBalance {
	if len(teams) == 0 {
		return CompetitiveBalance{Competitiveness: "Unknown"}
	}

	scores := make([]float64, 0, len(teams))
	lowest, highest := 100.0, 0.0
	for _, team := range teams {
		score := team.Projection.FinalScore
		scores = append(scores, score)
		if score < lowest {
			lowest = score
		}
		if score > highest {
			highest = score
		}
	}

	stdev := 0.0
	if len(scores) > 1 {
		stdev = stat.StdDev(scores, nil)
	}
	balance := 100 - 2*stdev
	if balance < 0 {
		balance = 0
	}

	return CompetitiveBalance{
		BalanceScore:    balance,
		Competitiveness: competitivenessLabel(balance),
		ScoreSpread:     highest - lowest,
		StdDeviation:    stdev,
	}
}

func competitivenessLabel(balance float64) string {
	switch {
	case balance >= 80:
		return "Very High"
	case balance >= 65:
		return "High"
	case balance >= 50:
		return "Moderate"
	case balance >= 35:
		return "Low"
	default:
		return "Very Low"
	}
}

// strategicInsights reports punt and positional trends seen on two or more
// teams, plus recommendations for the user's team.
func (da *DraftAnalytics) strategicInsights(teams map[int]TeamAnalysis, userTeamID int) StrategicInsights {
	insights := StrategicInsights{
		DraftTrends:           []string{},
		StrategicObservations: []string{},
		UserRecommendations:   []string{},
	}

	// Punt trends across teams with an active strategy.
	puntCounts := make(map[models.Category]int)
	for _, team := range teams {
		for category := range team.Punt.PuntedCategories() {
			puntCounts[category]++
		}
	}
	for _, c := range models.Categories {
		if count := puntCounts[c]; count >= 2 {
			insights.DraftTrends = append(insights.DraftTrends,
				fmt.Sprintf("%d teams are punting %s; its value is depressed league-wide", count, c.Short()))
		}
	}

	// Positional concentration trends.
	heavyCounts := make(map[models.PositionClass]int)
	for _, team := range teams {
		for _, warning := range team.Risk.Warnings {
			if warning.Type != WarningPositionImbalance {
				continue
			}
			for _, class := range []models.PositionClass{models.ClassGuard, models.ClassForward, models.ClassCenter} {
				if warning.Title == fmt.Sprintf("%s-Heavy Roster", class) {
					heavyCounts[class]++
				}
			}
		}
	}
	for _, class := range []models.PositionClass{models.ClassGuard, models.ClassForward, models.ClassCenter} {
		if count := heavyCounts[class]; count >= 2 {
			insights.StrategicObservations = append(insights.StrategicObservations,
				fmt.Sprintf("%d teams went %s-heavy; scarcity at other positions follows", count, class))
		}
	}

	user, ok := teams[userTeamID]
	if !ok {
		return insights
	}
	switch {
	case user.Projection.FinalScore >= 85:
		insights.UserRecommendations = append(insights.UserRecommendations,
			"Excellent draft: a championship-caliber foundation across categories")
	case user.Projection.FinalScore >= 70:
		insights.UserRecommendations = append(insights.UserRecommendations,
			"Strong draft: a playoff push is realistic with smart waiver moves")
	case user.Projection.FinalScore >= 55:
		insights.UserRecommendations = append(insights.UserRecommendations,
			"Solid draft: target your weak categories early on the waiver wire")
	default:
		insights.UserRecommendations = append(insights.UserRecommendations,
			"Work to do: stream aggressively and trade from surplus categories")
	}
	if user.Punt.Active() {
		insights.UserRecommendations = append(insights.UserRecommendations,
			"Commit to your punt build: every pickup should strengthen the categories you kept")
	}
	for _, warning := range user.Risk.Warnings {
		if warning.Severity == SeverityHigh {
			insights.UserRecommendations = append(insights.UserRecommendations, warning.Recommendation)
		}
	}
	return insights
}
