package suggest

// Weights are the point values each signal contributes to a candidate's
// priority score. Like the analysis thresholds these are tuning values
// flagged for product review, kept as data rather than inline literals.
type Weights struct {
	MaxSuggestions int
	CandidatePool  int // only the top N available players are scored

	PuntFitStrong   float64 // non-punt contribution >= PuntFitStrongAt
	PuntFitGood     float64
	PuntFitDecent   float64
	PuntFitStrongAt float64
	PuntFitGoodAt   float64
	PuntFitDecentAt float64

	ScarcityTight        float64 // <= ScarcityTightCount elite at position
	ScarcityLimited      float64
	ScarcityTightCount   int
	ScarcityLimitedCount int
	ScarcityEliteScore   float64

	CategoryNeed       float64
	CategoryNeedZScore float64

	ADPExcellent   float64 // adp_value > ADPExcellentAt
	ADPGood        float64
	ADPReach       float64
	ADPExcellentAt float64
	ADPGoodAt      float64
	ADPReachAt     float64

	PositionFill  float64
	PositionDepth float64

	UsageHigh    float64
	UsageAbove   float64
	TSElite      float64
	TSGood       float64
	TSPoor       float64
	PERElite     float64
	PERStrong    float64
	PERAbove     float64
	AgeYoung     float64
	AgePrime     float64
	AgeVeteran   float64
	GamesDurable float64
	GamesInjury  float64

	TierElite     float64 // rating > 10
	TierHigh      float64 // rating > 7
	TierSolid     float64 // rating > 4
	TierCliff     float64 // drop to next candidate > TierCliffDrop
	TierCliffDrop float64

	EarlyRoundBonus float64 // rounds <= 3, rating > 8
	MidRoundBonus   float64 // rounds <= 6, rating > 5
	LateRoundBonus  float64 // later rounds, rating > 2

	LongWaitBonus float64 // picks until next turn > LongWaitPicks
	LongWaitPicks int
}

// DefaultWeights returns the production tuning.
func DefaultWeights() Weights {
	return Weights{
		MaxSuggestions: 5,
		CandidatePool:  10,

		PuntFitStrong:   15,
		PuntFitGood:     10,
		PuntFitDecent:   5,
		PuntFitStrongAt: 6,
		PuntFitGoodAt:   4,
		PuntFitDecentAt: 2,

		ScarcityTight:        15,
		ScarcityLimited:      10,
		ScarcityTightCount:   3,
		ScarcityLimitedCount: 5,
		ScarcityEliteScore:   5,

		CategoryNeed:       20,
		CategoryNeedZScore: 1.0,

		ADPExcellent:   20,
		ADPGood:        10,
		ADPReach:       -5,
		ADPExcellentAt: 12,
		ADPGoodAt:      6,
		ADPReachAt:     -6,

		PositionFill:  12,
		PositionDepth: 8,

		UsageHigh:    3,
		UsageAbove:   1,
		TSElite:      4,
		TSGood:       2,
		TSPoor:       -2,
		PERElite:     3,
		PERStrong:    2,
		PERAbove:     1,
		AgeYoung:     2,
		AgePrime:     1,
		AgeVeteran:   -1,
		GamesDurable: 1,
		GamesInjury:  -2,

		TierElite:     15,
		TierHigh:      10,
		TierSolid:     5,
		TierCliff:     8,
		TierCliffDrop: 2,

		EarlyRoundBonus: 10,
		MidRoundBonus:   8,
		LateRoundBonus:  5,

		LongWaitBonus: 5,
		LongWaitPicks: 20,
	}
}
