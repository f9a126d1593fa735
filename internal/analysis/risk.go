package analysis

import (
	"fmt"
	"sort"

	"github.com/thelineup/draft-engine/internal/models"
)

// WarningType tags the roster-construction check that produced a warning.
type WarningType string

const (
	WarningInjuryRisk        WarningType = "injury_risk"
	WarningAgeRisk           WarningType = "age_risk"
	WarningPositionImbalance WarningType = "position_imbalance"
	WarningPositionGap       WarningType = "position_gap"
	WarningUsageConflict     WarningType = "usage_conflict"
	WarningEfficiencyRisk    WarningType = "efficiency_risk"
	WarningTeamConcentration WarningType = "team_concentration"
)

// Severity grades a warning.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// RiskLevel grades the roster overall.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
	RiskNone   RiskLevel = "none"
)

// Warning is one roster-construction finding.
type Warning struct {
	Type            WarningType `json:"type"`
	Severity        Severity    `json:"severity"`
	Title           string      `json:"title"`
	Message         string      `json:"message"`
	Recommendation  string      `json:"recommendation"`
	AffectedPlayers []string    `json:"affected_players,omitempty"`
}

// RiskReport aggregates a roster's construction warnings.
type RiskReport struct {
	Warnings         []Warning `json:"warnings"`
	RiskLevel        RiskLevel `json:"risk_level"`
	Message          string    `json:"message"`
	HighSeverity     int       `json:"high_severity_count"`
	MediumSeverity   int       `json:"medium_severity_count"`
	TotalWarnings    int       `json:"total_warnings"`
	InsufficientData bool      `json:"insufficient_data,omitempty"`
}

// RosterRiskAnalyzer scans a roster for durability, age, balance, usage,
// efficiency, and concentration concerns. Each check is independent; the
// overall level is a ladder over warning counts.
type RosterRiskAnalyzer struct {
	pool       *models.PlayerPool
	thresholds RiskThresholds
}

// NewRosterRiskAnalyzer creates an analyzer with default thresholds.
func NewRosterRiskAnalyzer(pool *models.PlayerPool) *RosterRiskAnalyzer {
	return &RosterRiskAnalyzer{pool: pool, thresholds: DefaultRiskThresholds()}
}

// Analyze runs all checks against the roster. Fewer than the minimum
// player count yields a neutral insufficient-data report, never an error.
func (a *RosterRiskAnalyzer) Analyze(roster []string) RiskReport {
	players := a.pool.Lookup(roster)
	if len(players) < a.thresholds.MinPlayers {
		return RiskReport{
			Warnings:         []Warning{},
			RiskLevel:        RiskNone,
			Message:          "Not enough players drafted to evaluate roster construction",
			InsufficientData: true,
		}
	}

	var warnings []Warning
	checks := []func([]*models.PlayerRecord) *Warning{
		a.checkDurability,
		a.checkAge,
		a.checkUsageConflict,
		a.checkEfficiency,
		a.checkTeamConcentration,
	}
	for _, check := range checks {
		if w := check(players); w != nil {
			warnings = append(warnings, *w)
		}
	}
	warnings = append(warnings, a.checkPositionBalance(players)...)

	report := RiskReport{Warnings: warnings, TotalWarnings: len(warnings)}
	for _, w := range warnings {
		switch w.Severity {
		case SeverityHigh:
			report.HighSeverity++
		case SeverityMedium:
			report.MediumSeverity++
		}
	}
	report.RiskLevel = overallRisk(report.HighSeverity, report.MediumSeverity, len(warnings))
	report.Message = riskMessage(report.RiskLevel, len(warnings))
	if report.Warnings == nil {
		report.Warnings = []Warning{}
	}
	return report
}

func overallRisk(high, medium, total int) RiskLevel {
	switch {
	case high >= 2:
		return RiskHigh
	case high >= 1 || medium >= 3:
		return RiskMedium
	case total > 0:
		return RiskLow
	default:
		return RiskNone
	}
}

func riskMessage(level RiskLevel, count int) string {
	switch level {
	case RiskHigh:
		return fmt.Sprintf("Serious construction concerns: %d warnings need attention", count)
	case RiskMedium:
		return fmt.Sprintf("Some construction concerns: %d warnings worth reviewing", count)
	case RiskLow:
		return fmt.Sprintf("Minor construction notes: %d warnings", count)
	default:
		return "Solid roster construction, no concerns detected"
	}
}

func (a *RosterRiskAnalyzer) checkDurability(players []*models.PlayerRecord) *Warning {
	t := a.thresholds
	var under30, under50 []string
	for _, p := range players {
		if p.GamesPlayed == nil {
			continue
		}
		if *p.GamesPlayed < t.DurabilityHighGames {
			under30 = append(under30, p.Name)
		}
		if *p.GamesPlayed < t.DurabilityMedGames {
			under50 = append(under50, p.Name)
		}
	}

	if len(under30) >= t.DurabilityHighCount {
		return &Warning{
			Type:            WarningInjuryRisk,
			Severity:        SeverityHigh,
			Title:           "Injury-Prone Core",
			Message:         fmt.Sprintf("%d players managed fewer than %d games last season", len(under30), t.DurabilityHighGames),
			Recommendation:  "Prioritize durable 70+ game players with your remaining picks",
			AffectedPlayers: under30,
		}
	}
	if len(under50) >= t.DurabilityMedCount {
		return &Warning{
			Type:            WarningInjuryRisk,
			Severity:        SeverityMedium,
			Title:           "Durability Concerns",
			Message:         fmt.Sprintf("%d players missed significant time (under %d games)", len(under50), t.DurabilityMedGames),
			Recommendation:  "Balance the roster with reliable iron-man types",
			AffectedPlayers: under50,
		}
	}
	return nil
}

func (a *RosterRiskAnalyzer) checkAge(players []*models.PlayerRecord) *Warning {
	t := a.thresholds
	var veterans, aging []string
	for _, p := range players {
		if p.Age == nil {
			continue
		}
		if *p.Age >= t.AgeHighYears {
			veterans = append(veterans, p.Name)
		}
		if *p.Age >= t.AgeMedYears {
			aging = append(aging, p.Name)
		}
	}

	if len(veterans) >= t.AgeHighCount {
		return &Warning{
			Type:            WarningAgeRisk,
			Severity:        SeverityHigh,
			Title:           "Aging Roster",
			Message:         fmt.Sprintf("%d players are %d or older and face decline risk", len(veterans), t.AgeHighYears),
			Recommendation:  "Add young players with upside to offset late-season fades",
			AffectedPlayers: veterans,
		}
	}
	if len(aging) >= t.AgeMedCount {
		return &Warning{
			Type:            WarningAgeRisk,
			Severity:        SeverityMedium,
			Title:           "Veteran-Heavy Roster",
			Message:         fmt.Sprintf("%d players are %d or older", len(aging), t.AgeMedYears),
			Recommendation:  "Consider younger targets in the remaining rounds",
			AffectedPlayers: aging,
		}
	}
	return nil
}

// checkPositionBalance emits an imbalance warning when one class dominates
// the roster and a gap warning when a class is missing entirely on a
// developed roster.
func (a *RosterRiskAnalyzer) checkPositionBalance(players []*models.PlayerRecord) []Warning {
	t := a.thresholds

	classCounts := make(map[models.PositionClass]int)
	classPlayers := make(map[models.PositionClass][]string)
	for _, p := range players {
		for _, class := range models.PositionClasses(p.Position) {
			classCounts[class]++
			classPlayers[class] = append(classPlayers[class], p.Name)
		}
	}

	var warnings []Warning
	for _, class := range []models.PositionClass{models.ClassGuard, models.ClassForward, models.ClassCenter} {
		count := classCounts[class]
		share := float64(count) / float64(len(players))
		if count >= t.ImbalanceCount || share >= t.ImbalanceShare {
			warnings = append(warnings, Warning{
				Type:            WarningPositionImbalance,
				Severity:        SeverityMedium,
				Title:           fmt.Sprintf("%s-Heavy Roster", class),
				Message:         fmt.Sprintf("%d of %d players are %ss", count, len(players), class),
				Recommendation:  "Diversify positions to avoid leaving categories uncontested",
				AffectedPlayers: classPlayers[class],
			})
		}
	}

	if len(players) >= t.GapMinRoster {
		// Frontcourt coverage counts forwards and centers together: a
		// PG/SG/C roster has its middle covered.
		gaps := []struct {
			class models.PositionClass
			count int
		}{
			{models.ClassGuard, classCounts[models.ClassGuard]},
			{models.ClassForwardCenter, classCounts[models.ClassForward] + classCounts[models.ClassCenter]},
			{models.ClassCenter, classCounts[models.ClassCenter]},
		}
		for _, gap := range gaps {
			if gap.count == 0 {
				warnings = append(warnings, Warning{
					Type:           WarningPositionGap,
					Severity:       SeverityMedium,
					Title:          fmt.Sprintf("No %s Coverage", gap.class),
					Message:        fmt.Sprintf("The roster has no %s-class player after %d picks", gap.class, len(players)),
					Recommendation: fmt.Sprintf("Target a %s soon to stay competitive in their categories", gap.class),
				})
			}
		}
	}
	return warnings
}

func (a *RosterRiskAnalyzer) checkUsageConflict(players []*models.PlayerRecord) *Warning {
	t := a.thresholds
	var heavy, elevated []string
	for _, p := range players {
		if p.UsageRate == nil {
			continue
		}
		if *p.UsageRate > t.UsageHighRate {
			heavy = append(heavy, p.Name)
		}
		if *p.UsageRate > t.UsageMedRate {
			elevated = append(elevated, p.Name)
		}
	}

	if len(heavy) >= t.UsageHighCount {
		return &Warning{
			Type:            WarningUsageConflict,
			Severity:        SeverityHigh,
			Title:           "Usage Logjam",
			Message:         fmt.Sprintf("%d ball-dominant players (usage above %.0f%%) compete for the same possessions", len(heavy), t.UsageHighRate*100),
			Recommendation:  "Add low-usage specialists who produce without the ball",
			AffectedPlayers: heavy,
		}
	}
	if len(elevated) >= t.UsageMedCount {
		return &Warning{
			Type:            WarningUsageConflict,
			Severity:        SeverityMedium,
			Title:           "High Usage Concentration",
			Message:         fmt.Sprintf("%d players carry elevated usage (above %.0f%%)", len(elevated), t.UsageMedRate*100),
			Recommendation:  "Round out the roster with off-ball contributors",
			AffectedPlayers: elevated,
		}
	}
	return nil
}

func (a *RosterRiskAnalyzer) checkEfficiency(players []*models.PlayerRecord) *Warning {
	t := a.thresholds
	var poor, below []string
	for _, p := range players {
		if p.TrueShootingPct == nil {
			continue
		}
		if *p.TrueShootingPct < t.EfficiencyHighTS {
			poor = append(poor, p.Name)
		}
		if *p.TrueShootingPct < t.EfficiencyMedTS {
			below = append(below, p.Name)
		}
	}

	if len(poor) >= t.EfficiencyHighCount {
		return &Warning{
			Type:            WarningEfficiencyRisk,
			Severity:        SeverityHigh,
			Title:           "Efficiency Drain",
			Message:         fmt.Sprintf("%d players shoot below %.0f%% true shooting", len(poor), t.EfficiencyHighTS*100),
			Recommendation:  "Your percentages are at risk; target efficient scorers",
			AffectedPlayers: poor,
		}
	}
	if len(below) >= t.EfficiencyMedCount {
		return &Warning{
			Type:            WarningEfficiencyRisk,
			Severity:        SeverityMedium,
			Title:           "Below-Average Efficiency",
			Message:         fmt.Sprintf("%d players shoot below %.0f%% true shooting", len(below), t.EfficiencyMedTS*100),
			Recommendation:  "Watch FG% closely with your remaining picks",
			AffectedPlayers: below,
		}
	}
	return nil
}

func (a *RosterRiskAnalyzer) checkTeamConcentration(players []*models.PlayerRecord) *Warning {
	t := a.thresholds
	teamCounts := make(map[string][]string)
	for _, p := range players {
		if p.Team != "" {
			teamCounts[p.Team] = append(teamCounts[p.Team], p.Name)
		}
	}
	// Map iteration order would make the warned team arbitrary when two
	// teams cross the threshold.
	teams := make([]string, 0, len(teamCounts))
	for team := range teamCounts {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	for _, team := range teams {
		names := teamCounts[team]
		if len(names) >= t.ConcentrationPerTeam {
			return &Warning{
				Type:            WarningTeamConcentration,
				Severity:        SeverityMedium,
				Title:           fmt.Sprintf("Heavy %s Exposure", team),
				Message:         fmt.Sprintf("%d roster players share the same NBA team (%s)", len(names), team),
				Recommendation:  "One bad schedule week or injury hits several roster spots at once",
				AffectedPlayers: names,
			}
		}
	}
	return nil
}
