package analysis

// The boundary constants below are heuristic tuning values inherited from
// league play-testing, not derived quantities. They are grouped here as
// data so they can be retuned without touching the logic that reads them.

// Thresholds holds the cut points used by category standing analysis and
// punt detection.
type Thresholds struct {
	// Relative standing: percentile cut points (percentile = share of
	// teams at or below this team's rank).
	StrongPercentile float64
	WeakPercentile   float64

	// Absolute standing fallback when no league context exists. Turnover
	// totals run smaller in magnitude than the counting categories, so
	// they carry their own strong bar.
	StrongTotal          float64
	StrongTotalTurnovers float64
	AverageTotal         float64

	// Punt detection.
	MinPlayersForPunt     int
	MinTeamsForRelative   int
	BottomQuintile        float64 // rank >= BottomQuintile * teams
	LastPlaceTotalCeiling float64 // last place and total below this => medium
	AbsolutePuntTotal     float64 // total below this without league context => medium
	PctPuntMinRoster      int     // roster size needed for the percentage-category rule
	PctPuntPlayerShare    float64 // share of players below PctPuntPlayerScore
	PctPuntPlayerScore    float64
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongPercentile: 0.67,
		WeakPercentile:   0.33,

		StrongTotal:          3.0,
		StrongTotalTurnovers: 2.0,
		AverageTotal:         0.0,

		MinPlayersForPunt:     3,
		MinTeamsForRelative:   6,
		BottomQuintile:        0.80,
		LastPlaceTotalCeiling: -2.0,
		AbsolutePuntTotal:     -4.0,
		PctPuntMinRoster:      6,
		PctPuntPlayerShare:    0.75,
		PctPuntPlayerScore:    -1.0,
	}
}

// RiskThresholds holds the roster-construction warning cut points.
type RiskThresholds struct {
	MinPlayers int

	DurabilityHighGames  int // games played below this
	DurabilityHighCount  int
	DurabilityMedGames   int
	DurabilityMedCount   int
	AgeHighYears         int
	AgeHighCount         int
	AgeMedYears          int
	AgeMedCount          int
	ImbalanceShare       float64 // one class at this share of the roster
	ImbalanceCount       int
	GapMinRoster         int
	UsageHighRate        float64
	UsageHighCount       int
	UsageMedRate         float64
	UsageMedCount        int
	EfficiencyHighTS     float64
	EfficiencyHighCount  int
	EfficiencyMedTS      float64
	EfficiencyMedCount   int
	ConcentrationPerTeam int
}

// DefaultRiskThresholds returns the production tuning.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		MinPlayers: 3,

		DurabilityHighGames:  30,
		DurabilityHighCount:  2,
		DurabilityMedGames:   50,
		DurabilityMedCount:   3,
		AgeHighYears:         35,
		AgeHighCount:         2,
		AgeMedYears:          33,
		AgeMedCount:          4,
		ImbalanceShare:       0.40,
		ImbalanceCount:       4,
		GapMinRoster:         6,
		UsageHighRate:        0.32,
		UsageHighCount:       3,
		UsageMedRate:         0.28,
		UsageMedCount:        4,
		EfficiencyHighTS:     0.45,
		EfficiencyHighCount:  3,
		EfficiencyMedTS:      0.50,
		EfficiencyMedCount:   5,
		ConcentrationPerTeam: 3,
	}
}

// GradeBand maps a minimum projection score to a letter grade. Bands are
// checked top-down, so they must stay sorted by Min descending.
type GradeBand struct {
	Min   float64
	Grade string
}

// GradeBands are the fixed 5-point bands from A+ down to F.
var GradeBands = []GradeBand{
	{90, "A+"},
	{85, "A"},
	{80, "A-"},
	{75, "B+"},
	{70, "B"},
	{65, "B-"},
	{60, "C+"},
	{55, "C"},
	{50, "C-"},
	{45, "D+"},
	{40, "D"},
	{35, "D-"},
	{0, "F"},
}

// OutlookBand maps a minimum projection score to a qualitative label.
type OutlookBand struct {
	Min     float64
	Outlook string
}

// OutlookBands run from Championship Contender down to Rebuilding.
var OutlookBands = []OutlookBand{
	{85, "Championship Contender"},
	{70, "Playoff Contender"},
	{60, "Competitive"},
	{50, "Average"},
	{40, "Developing"},
	{0, "Rebuilding"},
}

// ProjectionWeights holds the component weights of the team projection
// score.
type ProjectionWeights struct {
	Base float64

	StrongCategory  float64
	AverageCategory float64

	PuntBonusHigh   float64
	PuntBonusMedium float64

	StrongTeamCount7 float64
	StrongTeamCount5 float64
	StrongTeamCount3 float64

	RiskPenaltyHigh   float64
	RiskPenaltyMedium float64
	RiskPenaltyLow    float64

	WeakPenalty6 float64
	WeakPenalty4 float64
}

// DefaultProjectionWeights returns the production tuning.
func DefaultProjectionWeights() ProjectionWeights {
	return ProjectionWeights{
		Base:             35,
		StrongCategory:   8,
		AverageCategory:  3,
		PuntBonusHigh:    6,
		PuntBonusMedium:  3,
		StrongTeamCount7: 10,
		StrongTeamCount5: 5,
		StrongTeamCount3: 2,

		RiskPenaltyHigh:   30,
		RiskPenaltyMedium: 20,
		RiskPenaltyLow:    10,

		WeakPenalty6: 15,
		WeakPenalty4: 8,
	}
}
